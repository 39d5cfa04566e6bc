package spirv

// Code classifies a validation diagnostic by the kind of rule it violated.
type Code uint32

const (
	// CodeMalformedOperandType means an operand is not the expected scalar or
	// type shape, e.g. a Memory Semantics operand that is not a 32-bit int.
	CodeMalformedOperandType Code = iota + 1
	// CodeNonConstantUnderCapability means a value required to be a
	// compile-time constant is not, given an active capability.
	CodeNonConstantUnderCapability
	// CodeIncompatibleMemoryModel means ordering semantics conflict with the
	// module's declared memory model.
	CodeIncompatibleMemoryModel
	// CodeMissingCapabilityForModifier means a modifier bit requires a
	// capability the module does not declare.
	CodeMissingCapabilityForModifier
	// CodeConflictingOrderingBits means more than one ordering-axis bit is set.
	CodeConflictingOrderingBits
	// CodeMissingOrderingBit means the active environment requires an
	// ordering-axis bit and none is set.
	CodeMissingOrderingBit
	// CodeMissingPairedOrderingBit means a modifier requires a paired
	// ordering bit that is not present.
	CodeMissingPairedOrderingBit
	// CodeMissingStorageClass means the storage-class axis is empty where the
	// active environment or modifiers require it to be non-empty.
	CodeMissingStorageClass
	// CodeWrongResultOrOperandType means a named-barrier type identity
	// mismatch on a result type or operand.
	CodeWrongResultOrOperandType
	// CodeInvalidScope means a scope operand value is outside what the active
	// environment allows. Produced by scope validators, not by the
	// memory-semantics rules.
	CodeInvalidScope
	// CodeExecutionModelViolation means a deferred constraint failed for an
	// execution model that can reach the instruction. Produced only at
	// finalization.
	CodeExecutionModelViolation
)

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case CodeMalformedOperandType:
		return "MalformedOperandType"
	case CodeNonConstantUnderCapability:
		return "NonConstantUnderCapability"
	case CodeIncompatibleMemoryModel:
		return "IncompatibleMemoryModel"
	case CodeMissingCapabilityForModifier:
		return "MissingCapabilityForModifier"
	case CodeConflictingOrderingBits:
		return "ConflictingOrderingBits"
	case CodeMissingOrderingBit:
		return "MissingOrderingBit"
	case CodeMissingPairedOrderingBit:
		return "MissingPairedOrderingBit"
	case CodeMissingStorageClass:
		return "MissingStorageClass"
	case CodeWrongResultOrOperandType:
		return "WrongResultOrOperandType"
	case CodeInvalidScope:
		return "InvalidScope"
	case CodeExecutionModelViolation:
		return "ExecutionModelViolation"
	}
	return "Unknown"
}

// Diagnostic is one rule violation: a code, a rule-specific message and the
// instruction it is attributed to. Validation is a read-only analysis, so a
// diagnostic is terminal for that instruction; there is no retry path.
type Diagnostic struct {
	Code    Code
	Inst    *Instruction
	Message string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Inst != nil {
		return d.Message + "\n  " + d.Inst.String()
	}
	return d.Message
}
