// Package api includes SPIR-V constants and types used by both end-users and
// internal implementations.
package api

import "fmt"

// Opcode is the binary opcode of a SPIR-V instruction. See also OpcodeName.
//
// Note: This is a type alias as it is easier to carry around decoded words.
// See https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html#_instructions
type Opcode = uint16

const (
	// OpcodeTypeInt declares a new integer type with a bit width and signedness.
	OpcodeTypeInt Opcode = 21
	// OpcodeTypeNamedBarrier declares the named-barrier type: a first-class,
	// reusable synchronization object, unlike the anonymous barriers created by
	// OpcodeControlBarrier.
	OpcodeTypeNamedBarrier Opcode = 327
	// OpcodeConstant declares a compile-time constant of a scalar type. Its
	// value words are known at validation time.
	OpcodeConstant Opcode = 43
	// OpcodeSpecConstant declares a specialization constant. Its value is not
	// known until specialization, so it does not count as a compile-time
	// constant for rules that require one.
	OpcodeSpecConstant Opcode = 50
	// OpcodeUndef yields an undefined value of a given type.
	OpcodeUndef Opcode = 1

	// OpcodeControlBarrier waits for all active invocations within its
	// execution scope to reach it, and also acts as a memory barrier described
	// by its memory scope and memory-semantics operands.
	OpcodeControlBarrier Opcode = 224
	// OpcodeMemoryBarrier orders memory accesses according to its memory scope
	// and memory-semantics operands, without any execution synchronization.
	OpcodeMemoryBarrier Opcode = 225
	// OpcodeNamedBarrierInitialize creates a named-barrier object for a given
	// subgroup count. Its result type must be OpcodeTypeNamedBarrier.
	OpcodeNamedBarrierInitialize Opcode = 328
	// OpcodeMemoryNamedBarrier performs a memory barrier through a
	// named-barrier object.
	OpcodeMemoryNamedBarrier Opcode = 329
)

// OpcodeName returns the name of the opcode as spelled in the SPIR-V
// specification, or a hex fallback for an opcode this package doesn't name.
func OpcodeName(op Opcode) string {
	switch op {
	case OpcodeTypeInt:
		return "OpTypeInt"
	case OpcodeTypeNamedBarrier:
		return "OpTypeNamedBarrier"
	case OpcodeConstant:
		return "OpConstant"
	case OpcodeSpecConstant:
		return "OpSpecConstant"
	case OpcodeUndef:
		return "OpUndef"
	case OpcodeControlBarrier:
		return "OpControlBarrier"
	case OpcodeMemoryBarrier:
		return "OpMemoryBarrier"
	case OpcodeNamedBarrierInitialize:
		return "OpNamedBarrierInitialize"
	case OpcodeMemoryNamedBarrier:
		return "OpMemoryNamedBarrier"
	}
	return fmt.Sprintf("%#x", op)
}

// Capability is a named feature flag a module declares to unlock otherwise
// restricted instructions or operands.
type Capability = uint32

const (
	// CapabilityMatrix is implied by CapabilityShader.
	CapabilityMatrix Capability = 0
	// CapabilityShader marks the module as usable by graphics pipelines. Some
	// operands, such as Memory Semantics, must be compile-time constants when
	// this capability is declared.
	CapabilityShader Capability = 1
	// CapabilityKernel marks the module as usable by OpenCL-style compute.
	CapabilityKernel Capability = 6
	// CapabilityNamedBarrier unlocks OpcodeTypeNamedBarrier and the
	// named-barrier instructions.
	CapabilityNamedBarrier Capability = 3330
	// CapabilityVulkanMemoryModelKHR unlocks the VulkanKHR memory model and
	// the OutputMemoryKHR, MakeAvailableKHR and MakeVisibleKHR memory
	// semantics.
	CapabilityVulkanMemoryModelKHR Capability = 5345
)

// CapabilityName returns the name of the capability as spelled in the SPIR-V
// specification.
func CapabilityName(c Capability) string {
	switch c {
	case CapabilityMatrix:
		return "Matrix"
	case CapabilityShader:
		return "Shader"
	case CapabilityKernel:
		return "Kernel"
	case CapabilityNamedBarrier:
		return "NamedBarrier"
	case CapabilityVulkanMemoryModelKHR:
		return "VulkanMemoryModelKHR"
	}
	return fmt.Sprintf("%#x", c)
}

// ExecutionModel is the pipeline stage a function entry point runs under.
type ExecutionModel = uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
	ExecutionModelTaskNV                 ExecutionModel = 5267
	ExecutionModelMeshNV                 ExecutionModel = 5268
)

// ExecutionModelName returns the name of the execution model as spelled in the
// SPIR-V specification.
func ExecutionModelName(em ExecutionModel) string {
	switch em {
	case ExecutionModelVertex:
		return "Vertex"
	case ExecutionModelTessellationControl:
		return "TessellationControl"
	case ExecutionModelTessellationEvaluation:
		return "TessellationEvaluation"
	case ExecutionModelGeometry:
		return "Geometry"
	case ExecutionModelFragment:
		return "Fragment"
	case ExecutionModelGLCompute:
		return "GLCompute"
	case ExecutionModelKernel:
		return "Kernel"
	case ExecutionModelTaskNV:
		return "TaskNV"
	case ExecutionModelMeshNV:
		return "MeshNV"
	}
	return fmt.Sprintf("%#x", em)
}

// MemoryModel is the module-wide declaration of the memory-consistency rules
// its instructions obey.
type MemoryModel = uint32

const (
	MemoryModelSimple    MemoryModel = 0
	MemoryModelGLSL450   MemoryModel = 1
	MemoryModelOpenCL    MemoryModel = 2
	MemoryModelVulkanKHR MemoryModel = 3
)

// MemoryModelName returns the name of the memory model as spelled in the
// SPIR-V specification.
func MemoryModelName(mm MemoryModel) string {
	switch mm {
	case MemoryModelSimple:
		return "Simple"
	case MemoryModelGLSL450:
		return "GLSL450"
	case MemoryModelOpenCL:
		return "OpenCL"
	case MemoryModelVulkanKHR:
		return "VulkanKHR"
	}
	return fmt.Sprintf("%#x", mm)
}

// Scope denotes the breadth of invocations a synchronization or memory
// instruction affects.
type Scope = uint32

const (
	ScopeCrossDevice    Scope = 0
	ScopeDevice         Scope = 1
	ScopeWorkgroup      Scope = 2
	ScopeSubgroup       Scope = 3
	ScopeInvocation     Scope = 4
	ScopeQueueFamilyKHR Scope = 5
)

// ScopeName returns the name of the scope as spelled in the SPIR-V
// specification.
func ScopeName(s Scope) string {
	switch s {
	case ScopeCrossDevice:
		return "CrossDevice"
	case ScopeDevice:
		return "Device"
	case ScopeWorkgroup:
		return "Workgroup"
	case ScopeSubgroup:
		return "Subgroup"
	case ScopeInvocation:
		return "Invocation"
	case ScopeQueueFamilyKHR:
		return "QueueFamilyKHR"
	}
	return fmt.Sprintf("%#x", s)
}

// MemorySemantics is the synchronization bitmask operand of barrier and atomic
// instructions. It combines two orthogonal axes plus cross-axis modifiers:
//
//   - ordering axis (at most one set): Acquire, Release, AcquireRelease,
//     SequentiallyConsistent
//   - storage-class axis (any combination): UniformMemory, SubgroupMemory,
//     WorkgroupMemory, CrossWorkgroupMemory, AtomicCounterMemory, ImageMemory,
//     OutputMemoryKHR
//   - modifiers whose legality depends on both axes: MakeAvailableKHR,
//     MakeVisibleKHR
type MemorySemantics = uint32

const (
	MemorySemanticsNone                       MemorySemantics = 0x0
	MemorySemanticsAcquireMask                MemorySemantics = 0x2
	MemorySemanticsReleaseMask                MemorySemantics = 0x4
	MemorySemanticsAcquireReleaseMask         MemorySemantics = 0x8
	MemorySemanticsSequentiallyConsistentMask MemorySemantics = 0x10
	MemorySemanticsUniformMemoryMask          MemorySemantics = 0x40
	MemorySemanticsSubgroupMemoryMask         MemorySemantics = 0x80
	MemorySemanticsWorkgroupMemoryMask        MemorySemantics = 0x100
	MemorySemanticsCrossWorkgroupMemoryMask   MemorySemantics = 0x200
	MemorySemanticsAtomicCounterMemoryMask    MemorySemantics = 0x400
	MemorySemanticsImageMemoryMask            MemorySemantics = 0x800
	MemorySemanticsOutputMemoryKHRMask        MemorySemantics = 0x1000
	MemorySemanticsMakeAvailableKHRMask       MemorySemantics = 0x2000
	MemorySemanticsMakeVisibleKHRMask         MemorySemantics = 0x4000
)

// TargetEnv identifies the platform family a module is validated for.
type TargetEnv = byte

const (
	// TargetEnvUniversal applies no environment-specific rules.
	TargetEnvUniversal TargetEnv = 0
	TargetEnvVulkan1_0 TargetEnv = 1
	TargetEnvVulkan1_1 TargetEnv = 2
	TargetEnvVulkan1_2 TargetEnv = 3
	TargetEnvOpenCL2_1 TargetEnv = 4
	TargetEnvOpenCL2_2 TargetEnv = 5
)

// TargetEnvName returns a human-readable name for the target environment.
func TargetEnvName(env TargetEnv) string {
	switch env {
	case TargetEnvUniversal:
		return "Universal"
	case TargetEnvVulkan1_0:
		return "Vulkan 1.0"
	case TargetEnvVulkan1_1:
		return "Vulkan 1.1"
	case TargetEnvVulkan1_2:
		return "Vulkan 1.2"
	case TargetEnvOpenCL2_1:
		return "OpenCL 2.1"
	case TargetEnvOpenCL2_2:
		return "OpenCL 2.2"
	}
	return fmt.Sprintf("%#x", env)
}

// IsVulkanEnv returns true if the target environment is a member of the
// Vulkan family.
func IsVulkanEnv(env TargetEnv) bool {
	switch env {
	case TargetEnvVulkan1_0, TargetEnvVulkan1_1, TargetEnvVulkan1_2:
		return true
	}
	return false
}

// Version is a SPIR-V version as declared in a module header.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions.
var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
)

// Less returns true if v predates other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
