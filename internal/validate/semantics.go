// Package validate implements the semantic rules for the SPIR-V
// synchronization instruction family: the Memory Semantics bitmask rules, the
// per-opcode barrier checks and the deferred execution-model constraints the
// barrier pass registers for later finalization.
package validate

import (
	"fmt"
	"math/bits"

	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/spirv"
)

func diag(code spirv.Code, inst *spirv.Instruction, format string, args ...interface{}) *spirv.Diagnostic {
	return &spirv.Diagnostic{Code: code, Inst: inst, Message: fmt.Sprintf(format, args...)}
}

// validateMemorySemantics validates the Memory Semantics operand id of inst.
//
// The checks run in a fixed order and the first failure wins: later rules
// assume earlier ones held, and which single error is reported when several
// rules are violated at once is part of the observable contract. Do not
// reorder.
func validateMemorySemantics(s *spirv.State, inst *spirv.Instruction, id spirv.ID) *spirv.Diagnostic {
	opcode := inst.Opcode
	isInt32, isConst, value := s.EvalInt32IfConst(id)

	if !isInt32 {
		return diag(spirv.CodeMalformedOperandType, inst,
			"%s: expected Memory Semantics to be a 32-bit int", api.OpcodeName(opcode))
	}

	if !isConst {
		if s.HasCapability(api.CapabilityShader) {
			return diag(spirv.CodeNonConstantUnderCapability, inst,
				"Memory Semantics ids must be OpConstant when Shader capability is present")
		}
		// No further rules apply to a non-constant operand.
		return nil
	}

	if s.MemoryModel() == api.MemoryModelVulkanKHR &&
		value&api.MemorySemanticsSequentiallyConsistentMask != 0 {
		return diag(spirv.CodeIncompatibleMemoryModel, inst,
			"SequentiallyConsistent memory semantics cannot be used with the VulkanKHR memory model.")
	}

	if value&api.MemorySemanticsOutputMemoryKHRMask != 0 &&
		!s.HasCapability(api.CapabilityVulkanMemoryModelKHR) {
		return diag(spirv.CodeMissingCapabilityForModifier, inst,
			"%s: Memory Semantics OutputMemoryKHR requires capability VulkanMemoryModelKHR",
			api.OpcodeName(opcode))
	}

	if value&api.MemorySemanticsMakeAvailableKHRMask != 0 &&
		!s.HasCapability(api.CapabilityVulkanMemoryModelKHR) {
		return diag(spirv.CodeMissingCapabilityForModifier, inst,
			"%s: Memory Semantics MakeAvailableKHR requires capability VulkanMemoryModelKHR",
			api.OpcodeName(opcode))
	}

	if value&api.MemorySemanticsMakeVisibleKHRMask != 0 &&
		!s.HasCapability(api.CapabilityVulkanMemoryModelKHR) {
		return diag(spirv.CodeMissingCapabilityForModifier, inst,
			"%s: Memory Semantics MakeVisibleKHR requires capability VulkanMemoryModelKHR",
			api.OpcodeName(opcode))
	}

	orderingBits := bits.OnesCount32(value &
		(api.MemorySemanticsAcquireMask |
			api.MemorySemanticsReleaseMask |
			api.MemorySemanticsAcquireReleaseMask |
			api.MemorySemanticsSequentiallyConsistentMask))

	if orderingBits > 1 {
		return diag(spirv.CodeConflictingOrderingBits, inst,
			"%s: Memory Semantics can have at most one of the following bits set: "+
				"Acquire, Release, AcquireRelease or SequentiallyConsistent",
			api.OpcodeName(opcode))
	}

	if value&api.MemorySemanticsMakeAvailableKHRMask != 0 &&
		value&(api.MemorySemanticsReleaseMask|api.MemorySemanticsAcquireReleaseMask) == 0 {
		return diag(spirv.CodeMissingPairedOrderingBit, inst,
			"%s: MakeAvailableKHR Memory Semantics also requires either Release or "+
				"AcquireRelease Memory Semantics", api.OpcodeName(opcode))
	}

	if value&api.MemorySemanticsMakeVisibleKHRMask != 0 &&
		value&(api.MemorySemanticsAcquireMask|api.MemorySemanticsAcquireReleaseMask) == 0 {
		return diag(spirv.CodeMissingPairedOrderingBit, inst,
			"%s: MakeVisibleKHR Memory Semantics also requires either Acquire or "+
				"AcquireRelease Memory Semantics", api.OpcodeName(opcode))
	}

	if api.IsVulkanEnv(s.TargetEnv()) {
		includesStorageClass := value&
			(api.MemorySemanticsUniformMemoryMask|
				api.MemorySemanticsWorkgroupMemoryMask|
				api.MemorySemanticsImageMemoryMask|
				api.MemorySemanticsOutputMemoryKHRMask) != 0

		if opcode == api.OpcodeMemoryBarrier && orderingBits == 0 {
			return diag(spirv.CodeMissingOrderingBit, inst,
				"%s: Vulkan specification requires Memory Semantics to have one of "+
					"the following bits set: Acquire, Release, AcquireRelease or "+
					"SequentiallyConsistent", api.OpcodeName(opcode))
		}

		if opcode == api.OpcodeMemoryBarrier && !includesStorageClass {
			return diag(spirv.CodeMissingStorageClass, inst,
				"%s: expected Memory Semantics to include a Vulkan-supported storage class",
				api.OpcodeName(opcode))
		}

		// The symmetric check for OpControlBarrier fails the Vulkan CTS and is
		// intentionally disabled. Do not enable it without re-verifying
		// against current conformance requirements.
		//
		// if opcode == api.OpcodeControlBarrier && value != 0 && !includesStorageClass {
		// 	return diag(spirv.CodeMissingStorageClass, inst,
		// 		"%s: expected Memory Semantics to include a Vulkan-supported storage "+
		// 			"class if Memory Semantics is not None", api.OpcodeName(opcode))
		// }
	}

	if value&(api.MemorySemanticsMakeAvailableKHRMask|api.MemorySemanticsMakeVisibleKHRMask) != 0 {
		includesStorageClass := value&
			(api.MemorySemanticsUniformMemoryMask|
				api.MemorySemanticsSubgroupMemoryMask|
				api.MemorySemanticsWorkgroupMemoryMask|
				api.MemorySemanticsCrossWorkgroupMemoryMask|
				api.MemorySemanticsAtomicCounterMemoryMask|
				api.MemorySemanticsImageMemoryMask|
				api.MemorySemanticsOutputMemoryKHRMask) != 0

		if !includesStorageClass {
			return diag(spirv.CodeMissingStorageClass, inst,
				"%s: expected Memory Semantics to include a storage class",
				api.OpcodeName(opcode))
		}
	}

	return nil
}
