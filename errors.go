package spirvval

import "github.com/streamkit/spirvval/spirv"

// Diagnostic is one rule violation attributed to an instruction.
// See spirv.Diagnostic.
type Diagnostic = spirv.Diagnostic

// Code classifies a Diagnostic. The constants below mirror the rule families
// a diagnostic can come from; every immediate violation aborts further checks
// for its instruction, so each instruction reports at most one of them.
type Code = spirv.Code

const (
	CodeMalformedOperandType         = spirv.CodeMalformedOperandType
	CodeNonConstantUnderCapability   = spirv.CodeNonConstantUnderCapability
	CodeIncompatibleMemoryModel      = spirv.CodeIncompatibleMemoryModel
	CodeMissingCapabilityForModifier = spirv.CodeMissingCapabilityForModifier
	CodeConflictingOrderingBits      = spirv.CodeConflictingOrderingBits
	CodeMissingOrderingBit           = spirv.CodeMissingOrderingBit
	CodeMissingPairedOrderingBit     = spirv.CodeMissingPairedOrderingBit
	CodeMissingStorageClass          = spirv.CodeMissingStorageClass
	CodeWrongResultOrOperandType     = spirv.CodeWrongResultOrOperandType
	CodeInvalidScope                 = spirv.CodeInvalidScope
	CodeExecutionModelViolation      = spirv.CodeExecutionModelViolation
)

// ScopeValidator is the interface a pipeline implements to replace the
// built-in scope operand validation. See spirv.ScopeValidator.
type ScopeValidator = spirv.ScopeValidator
