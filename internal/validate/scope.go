package validate

import (
	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/spirv"
)

// StdScopes is the default spirv.ScopeValidator. It applies the
// environment-independent shape rules plus the basic Vulkan restrictions on
// scope values. Embedders with a full scope rule set plug in their own.
type StdScopes struct{}

var _ spirv.ScopeValidator = StdScopes{}

func validateScope(s *spirv.State, inst *spirv.Instruction, id spirv.ID, operand string) (uint32, bool, *spirv.Diagnostic) {
	isInt32, isConst, value := s.EvalInt32IfConst(id)

	if !isInt32 {
		return 0, false, diag(spirv.CodeMalformedOperandType, inst,
			"%s: expected %s to be a 32-bit int", api.OpcodeName(inst.Opcode), operand)
	}
	if !isConst {
		if s.HasCapability(api.CapabilityShader) {
			return 0, false, diag(spirv.CodeNonConstantUnderCapability, inst,
				"Scope ids must be OpConstant when Shader capability is present")
		}
		return 0, false, nil
	}
	return value, true, nil
}

// ValidateExecutionScope implements spirv.ScopeValidator.
func (StdScopes) ValidateExecutionScope(s *spirv.State, inst *spirv.Instruction, id spirv.ID) *spirv.Diagnostic {
	value, resolved, d := validateScope(s, inst, id, "Execution Scope")
	if d != nil || !resolved {
		return d
	}

	if api.IsVulkanEnv(s.TargetEnv()) &&
		value != api.ScopeWorkgroup && value != api.ScopeSubgroup {
		return diag(spirv.CodeInvalidScope, inst,
			"%s: in Vulkan environment Execution Scope is limited to Workgroup and Subgroup",
			api.OpcodeName(inst.Opcode))
	}
	return nil
}

// ValidateMemoryScope implements spirv.ScopeValidator.
func (StdScopes) ValidateMemoryScope(s *spirv.State, inst *spirv.Instruction, id spirv.ID) *spirv.Diagnostic {
	value, resolved, d := validateScope(s, inst, id, "Memory Scope")
	if d != nil || !resolved {
		return d
	}

	if value == api.ScopeQueueFamilyKHR &&
		!s.HasCapability(api.CapabilityVulkanMemoryModelKHR) {
		return diag(spirv.CodeInvalidScope, inst,
			"%s: Memory Scope QueueFamilyKHR requires capability VulkanMemoryModelKHR",
			api.OpcodeName(inst.Opcode))
	}
	return nil
}
