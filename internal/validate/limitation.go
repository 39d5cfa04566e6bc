package validate

import (
	"github.com/streamkit/spirvval/api"
	"github.com/streamkit/spirvval/spirv"
)

// ExecutionModelLimitation is a deferred constraint: a check that cannot run
// when the instruction is seen because the execution models able to reach the
// enclosing function are not yet known. It is a plain value rather than a
// closure so the registry can be inspected and tested without a capturing
// environment.
type ExecutionModelLimitation struct {
	// Allowed is the set of execution models the instruction is legal under.
	Allowed []api.ExecutionModel

	// Message is the diagnostic text emitted for each violating model.
	Message string

	// Inst is the instruction the constraint originated from; diagnostics are
	// attributed to it.
	Inst *spirv.Instruction
}

// Evaluate returns true if the limitation holds for the given model.
func (l *ExecutionModelLimitation) Evaluate(model api.ExecutionModel) bool {
	for _, allowed := range l.Allowed {
		if model == allowed {
			return true
		}
	}
	return false
}

// LimitationRegistry holds deferred constraints per function. It is
// append-only while instructions are validated and drained once whole-module
// reachability is known. A registry is scoped to one validation run.
type LimitationRegistry struct {
	byFunction map[spirv.Index][]*ExecutionModelLimitation
}

// NewLimitationRegistry returns an empty registry.
func NewLimitationRegistry() *LimitationRegistry {
	return &LimitationRegistry{byFunction: make(map[spirv.Index][]*ExecutionModelLimitation)}
}

// Register appends a limitation to the function's list. It never fails:
// registration defers judgement, it doesn't make one.
func (r *LimitationRegistry) Register(fn spirv.Index, lim *ExecutionModelLimitation) {
	r.byFunction[fn] = append(r.byFunction[fn], lim)
}

// Registered returns the limitations recorded for a function, in insertion
// order.
func (r *LimitationRegistry) Registered(fn spirv.Index) []*ExecutionModelLimitation {
	return r.byFunction[fn]
}

// Finalize evaluates every limitation registered for the function against
// every execution model that can reach it, emitting one diagnostic per
// failing (limitation, model) pair. Limitations are evaluated in insertion
// order and consumed: a second Finalize for the same function sees none.
func (r *LimitationRegistry) Finalize(fn spirv.Index, reachable []api.ExecutionModel) []*spirv.Diagnostic {
	lims := r.byFunction[fn]
	delete(r.byFunction, fn)

	var diags []*spirv.Diagnostic
	for _, lim := range lims {
		for _, model := range reachable {
			if !lim.Evaluate(model) {
				diags = append(diags, diag(spirv.CodeExecutionModelViolation, lim.Inst, "%s", lim.Message))
			}
		}
	}
	return diags
}
