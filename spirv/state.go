package spirv

import "github.com/streamkit/spirvval/api"

// State is the read-only whole-module context threaded through every
// validation function. It indexes the module's id definitions once and
// answers the queries rule code needs: capability presence, target
// environment, memory model, constant evaluation and type lookups.
//
// State performs no mutation after construction, so one State may serve
// concurrent per-function validation.
type State struct {
	module *Module
	env    api.TargetEnv
	defs   map[ID]*Instruction
}

// NewState indexes a decoded module for validation against the given target
// environment.
func NewState(m *Module, env api.TargetEnv) *State {
	s := &State{module: m, env: env, defs: make(map[ID]*Instruction)}
	for _, inst := range m.GlobalSection {
		if inst.ResultID != 0 {
			s.defs[inst.ResultID] = inst
		}
	}
	for _, fn := range m.FunctionSection {
		for _, inst := range fn.Instructions {
			if inst.ResultID != 0 {
				s.defs[inst.ResultID] = inst
			}
		}
	}
	return s
}

// Module returns the module under validation.
func (s *State) Module() *Module { return s.module }

// TargetEnv returns the environment the module is validated for.
func (s *State) TargetEnv() api.TargetEnv { return s.env }

// MemoryModel returns the module's declared memory model.
func (s *State) MemoryModel() api.MemoryModel { return s.module.MemoryModel }

// Version returns the SPIR-V version declared in the module header.
func (s *State) Version() api.Version { return s.module.Version }

// HasCapability returns true if the module declares the capability.
func (s *State) HasCapability(c api.Capability) bool {
	return s.module.Capabilities.Has(c)
}

// Def returns the instruction defining id, or nil.
func (s *State) Def(id ID) *Instruction { return s.defs[id] }

// OpcodeOf returns the opcode of the instruction defining id, or zero when id
// is undefined.
func (s *State) OpcodeOf(id ID) api.Opcode {
	if def := s.defs[id]; def != nil {
		return def.Opcode
	}
	return 0
}

// OperandTypeID returns the result-type id of the instruction defining the
// operand at index n, or zero when the operand does not reference a typed id.
func (s *State) OperandTypeID(inst *Instruction, n int) ID {
	if def := s.defs[inst.Operand(n)]; def != nil {
		return def.TypeID
	}
	return 0
}

// IsIntScalar returns true if typeID names an integer scalar type.
func (s *State) IsIntScalar(typeID ID) bool {
	return s.OpcodeOf(typeID) == api.OpcodeTypeInt
}

// BitWidth returns the bit width of a scalar type, or zero for non-scalar or
// undefined type ids.
func (s *State) BitWidth(typeID ID) uint32 {
	def := s.defs[typeID]
	if def == nil || def.Opcode != api.OpcodeTypeInt {
		return 0
	}
	return def.Operand(0)
}

// EvalInt32IfConst reports whether id has a 32-bit integer type, whether its
// value is a compile-time constant, and the value when it is. A
// specialization constant is a 32-bit int but not a compile-time constant.
func (s *State) EvalInt32IfConst(id ID) (isInt32, isConst bool, value uint32) {
	def := s.defs[id]
	if def == nil {
		return false, false, 0
	}
	if !s.IsIntScalar(def.TypeID) || s.BitWidth(def.TypeID) != 32 {
		return false, false, 0
	}
	if def.Opcode != api.OpcodeConstant {
		return true, false, 0
	}
	return true, true, def.Operand(0)
}
