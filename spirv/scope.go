package spirv

// ScopeValidator validates the execution-scope and memory-scope operands of
// synchronization instructions. The barrier rules treat it as a black box:
// implementations receive the read-only State and return at most one
// Diagnostic per operand.
type ScopeValidator interface {
	// ValidateExecutionScope validates the Execution Scope operand id of inst.
	ValidateExecutionScope(s *State, inst *Instruction, id ID) *Diagnostic

	// ValidateMemoryScope validates the Memory Scope operand id of inst.
	ValidateMemoryScope(s *State, inst *Instruction, id ID) *Diagnostic
}
