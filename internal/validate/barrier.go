package validate

import (
	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/spirv"
)

// controlBarrierModels are the execution models OpControlBarrier is limited
// to before SPIR-V 1.3.
var controlBarrierModels = []api.ExecutionModel{
	api.ExecutionModelTessellationControl,
	api.ExecutionModelGLCompute,
	api.ExecutionModelKernel,
	api.ExecutionModelTaskNV,
	api.ExecutionModelMeshNV,
}

// Barriers validates one instruction of the synchronization opcode family.
// It is called once per instruction, in module order, and is stateless apart
// from deferred registrations into reg. Opcodes outside the family succeed
// without any checks.
//
// Operand offsets are fixed per opcode. The first failing operand check wins;
// deferred registration for OpControlBarrier happens regardless of whether
// the operand checks pass, as the two are reported on separate schedules.
func Barriers(s *spirv.State, scopes spirv.ScopeValidator, reg *LimitationRegistry, inst *spirv.Instruction) *spirv.Diagnostic {
	switch inst.Opcode {
	case api.OpcodeControlBarrier:
		if s.Version().Less(api.Version1_3) {
			reg.Register(inst.Function.Index, &ExecutionModelLimitation{
				Allowed: controlBarrierModels,
				Message: "OpControlBarrier requires one of the following Execution Models: " +
					"TessellationControl, GLCompute or Kernel",
				Inst: inst,
			})
		}

		executionScope := inst.Operand(0)
		memoryScope := inst.Operand(1)
		memorySemantics := inst.Operand(2)

		if d := scopes.ValidateExecutionScope(s, inst, executionScope); d != nil {
			return d
		}
		if d := scopes.ValidateMemoryScope(s, inst, memoryScope); d != nil {
			return d
		}
		return validateMemorySemantics(s, inst, memorySemantics)

	case api.OpcodeMemoryBarrier:
		memoryScope := inst.Operand(0)
		memorySemantics := inst.Operand(1)

		if d := scopes.ValidateMemoryScope(s, inst, memoryScope); d != nil {
			return d
		}
		return validateMemorySemantics(s, inst, memorySemantics)

	case api.OpcodeNamedBarrierInitialize:
		if s.OpcodeOf(inst.TypeID) != api.OpcodeTypeNamedBarrier {
			return diag(spirv.CodeWrongResultOrOperandType, inst,
				"%s: expected Result Type to be OpTypeNamedBarrier",
				api.OpcodeName(inst.Opcode))
		}

		subgroupCountType := s.OperandTypeID(inst, 0)
		if !s.IsIntScalar(subgroupCountType) || s.BitWidth(subgroupCountType) != 32 {
			return diag(spirv.CodeMalformedOperandType, inst,
				"%s: expected Subgroup Count to be a 32-bit int",
				api.OpcodeName(inst.Opcode))
		}

	case api.OpcodeMemoryNamedBarrier:
		namedBarrierType := s.OperandTypeID(inst, 0)
		if s.OpcodeOf(namedBarrierType) != api.OpcodeTypeNamedBarrier {
			return diag(spirv.CodeWrongResultOrOperandType, inst,
				"%s: expected Named Barrier to be of type OpTypeNamedBarrier",
				api.OpcodeName(inst.Opcode))
		}

		memoryScope := inst.Operand(1)
		memorySemantics := inst.Operand(2)

		if d := scopes.ValidateMemoryScope(s, inst, memoryScope); d != nil {
			return d
		}
		return validateMemorySemantics(s, inst, memorySemantics)
	}

	return nil
}
