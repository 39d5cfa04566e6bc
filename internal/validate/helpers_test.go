package validate

import (
	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/spirv"
)

// Well-known ids every test module declares up front.
const (
	typeInt32ID        spirv.ID = 1
	typeInt64ID        spirv.ID = 2
	typeNamedBarrierID spirv.ID = 3
)

// moduleBuilder assembles test modules the way a decoder would: globals
// first, then functions, with module positions assigned in encounter order.
type moduleBuilder struct {
	m   *spirv.Module
	pos int
}

func newModuleBuilder(version api.Version, memoryModel api.MemoryModel, caps ...api.Capability) *moduleBuilder {
	b := &moduleBuilder{m: &spirv.Module{
		Version:      version,
		MemoryModel:  memoryModel,
		Capabilities: spirv.NewCapabilitySet(caps...),
	}}
	b.global(&spirv.Instruction{Opcode: api.OpcodeTypeInt, ResultID: typeInt32ID, Operands: []uint32{32, 0}})
	b.global(&spirv.Instruction{Opcode: api.OpcodeTypeInt, ResultID: typeInt64ID, Operands: []uint32{64, 0}})
	b.global(&spirv.Instruction{Opcode: api.OpcodeTypeNamedBarrier, ResultID: typeNamedBarrierID})
	return b
}

func (b *moduleBuilder) global(inst *spirv.Instruction) *moduleBuilder {
	inst.Position = b.pos
	b.pos++
	b.m.GlobalSection = append(b.m.GlobalSection, inst)
	return b
}

// constant declares a 32-bit integer OpConstant.
func (b *moduleBuilder) constant(id spirv.ID, value uint32) *moduleBuilder {
	return b.global(&spirv.Instruction{
		Opcode: api.OpcodeConstant, TypeID: typeInt32ID, ResultID: id, Operands: []uint32{value},
	})
}

// constant64 declares a 64-bit integer OpConstant, useful as a "wrong width"
// operand.
func (b *moduleBuilder) constant64(id spirv.ID, value uint32) *moduleBuilder {
	return b.global(&spirv.Instruction{
		Opcode: api.OpcodeConstant, TypeID: typeInt64ID, ResultID: id, Operands: []uint32{value, 0},
	})
}

// specConstant declares a 32-bit OpSpecConstant: right type, not a
// compile-time constant.
func (b *moduleBuilder) specConstant(id spirv.ID) *moduleBuilder {
	return b.global(&spirv.Instruction{
		Opcode: api.OpcodeSpecConstant, TypeID: typeInt32ID, ResultID: id, Operands: []uint32{0},
	})
}

// function appends a function holding the given instructions, wiring their
// Function backrefs and module positions, and returns its index.
func (b *moduleBuilder) function(insts ...*spirv.Instruction) spirv.Index {
	fn := &spirv.Function{Index: spirv.Index(len(b.m.FunctionSection))}
	for _, inst := range insts {
		inst.Function = fn
		inst.Position = b.pos
		b.pos++
		fn.Instructions = append(fn.Instructions, inst)
	}
	b.m.FunctionSection = append(b.m.FunctionSection, fn)
	return fn.Index
}

func (b *moduleBuilder) state(env api.TargetEnv) *spirv.State {
	return spirv.NewState(b.m, env)
}
