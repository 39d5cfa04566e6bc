// Package spirvval validates the semantic rules of SPIR-V synchronization
// instructions over an already-decoded module: the Memory Semantics bitmask
// rules, the per-opcode barrier checks, and the execution-model constraints
// that can only be judged once whole-module reachability is known.
package spirvval

import (
	"sort"

	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/internal/validate"
	"github.com/streamkit/spirvval/spirv"
)

// Validate checks every synchronization instruction of m and returns the
// diagnostics found, ordered by module position of the offending instruction.
// A nil result means the module passed.
//
// The analysis is read-only: m is never mutated and one decoded module may be
// validated concurrently under different configs.
func Validate(m *spirv.Module, c *Config) []*Diagnostic {
	if c == nil {
		c = NewConfig()
	}

	state := spirv.NewState(m, c.targetEnv)
	registry := validate.NewLimitationRegistry()

	var diags []*Diagnostic
	for _, fn := range m.FunctionSection {
		for _, inst := range fn.Instructions {
			if d := validate.Barriers(state, c.scopes, registry, inst); d != nil {
				diags = append(diags, d)
				if c.haltFirst {
					return diags
				}
			}
		}
	}

	reachable := reachableExecutionModels(m)
	for _, fn := range m.FunctionSection {
		for _, d := range registry.Finalize(fn.Index, reachable[fn.Index]) {
			diags = append(diags, d)
			if c.haltFirst {
				return diags
			}
		}
	}

	// Finalization diagnostics are attributed to the instruction that
	// registered them, so a stable sort by module position interleaves them
	// back into encounter order.
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Inst.Position < diags[j].Inst.Position
	})
	return diags
}

// reachableExecutionModels maps each function to the execution models of the
// entry points that can reach it through the static call graph. This is the
// function-to-entry-point mapping only; control-flow analysis inside function
// bodies is the embedding pipeline's concern.
func reachableExecutionModels(m *spirv.Module) map[spirv.Index][]api.ExecutionModel {
	reachable := make(map[spirv.Index][]api.ExecutionModel, len(m.FunctionSection))

	for _, ep := range m.EntryPointSection {
		seen := make(map[spirv.Index]bool)
		stack := []spirv.Index{ep.FunctionIndex}
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[idx] || int(idx) >= len(m.FunctionSection) {
				continue
			}
			seen[idx] = true

			if !hasModel(reachable[idx], ep.ExecutionModel) {
				reachable[idx] = append(reachable[idx], ep.ExecutionModel)
			}
			stack = append(stack, m.FunctionSection[idx].Callees...)
		}
	}
	return reachable
}

func hasModel(models []api.ExecutionModel, model api.ExecutionModel) bool {
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}
