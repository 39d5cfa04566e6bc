// Package spirv holds the in-memory representation of a decoded SPIR-V module
// and the read-only lookup state validation passes query.
package spirv

import (
	"fmt"

	"github.com/streamkit/spirvval/api"
)

// ID identifies a result produced by an instruction. Zero is never a valid ID.
type ID = uint32

// Index is the position of a function in the module's FunctionSection.
type Index = uint32

// Module is a decoded SPIR-V module, already parsed by an external decoder.
// All fields are immutable once decoding finished.
type Module struct {
	// Version is the SPIR-V version declared in the module header.
	Version api.Version

	// MemoryModel is the module-wide memory-consistency declaration.
	MemoryModel api.MemoryModel

	// Capabilities are the feature flags the module declares.
	Capabilities *CapabilitySet

	// EntryPointSection lists the entry points declared by the module. The
	// same function may back entry points of different execution models.
	EntryPointSection []*EntryPoint

	// GlobalSection contains module-scope instructions that produce ids:
	// type declarations and constants, in declaration order.
	GlobalSection []*Instruction

	// FunctionSection contains each function defined in this module. A
	// function's Index is its position in this slice.
	FunctionSection []*Function
}

// EntryPoint declares that a function may run under an execution model.
type EntryPoint struct {
	ExecutionModel api.ExecutionModel
	FunctionIndex  Index
	Name           string
}

// Function is a function body: its instructions in encounter order plus the
// functions it statically calls.
type Function struct {
	Index Index

	// Instructions are the function body in module encounter order.
	Instructions []*Instruction

	// Callees are the indexes of functions this function calls directly.
	Callees []Index
}

// Instruction is one decoded instruction: an opcode plus its operand words.
// Immutable once decoded; owned by the module and referenced, never copied,
// by validators.
type Instruction struct {
	Opcode api.Opcode

	// TypeID is the result-type id, or zero when the opcode has none.
	TypeID ID

	// ResultID is the id this instruction defines, or zero.
	ResultID ID

	// Operands are the remaining operand words, excluding the result type and
	// result id. Depending on the opcode a word is an id reference or a
	// literal (e.g. the width word of OpTypeInt).
	Operands []uint32

	// Function is the enclosing function, nil for module-scope instructions.
	Function *Function

	// Position is the module encounter order, used to attribute and order
	// diagnostics deterministically.
	Position int
}

// Operand returns the operand word at i, or zero when the instruction is too
// short. Barrier operand offsets are fixed per opcode, so a missing word is
// reported by the operand's own validation rather than a panic.
func (i *Instruction) Operand(n int) uint32 {
	if n >= len(i.Operands) {
		return 0
	}
	return i.Operands[n]
}

// String implements fmt.Stringer, identifying the instruction in diagnostics.
func (i *Instruction) String() string {
	return fmt.Sprintf("%s (module position %d)", api.OpcodeName(i.Opcode), i.Position)
}
