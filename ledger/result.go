// File: result.go
// Role: Result — pairs a Step with the Operation that produced it, keyed-key
// whitelist validation for the derived values a particular call site is
// allowed to record, and the dependency DAG (toposort over *Result
// arguments) used for Explain(nested=true).
//
// AI-Hints (file):
//   - A dependency edge exists wherever an Operation's Args/Kwargs holds
//     another *Result directly — not a domain-typed wrapper around one.
//     Callers in identify/estimate that wrap Result in a named type
//     (IdentificationResult, EstimationResult) pass the embedded *Result
//     itself as the Operation argument when chaining calls, so Dependencies
//     sees it regardless of which wrapper type the caller uses.
package ledger

import "sort"

// NewResult freezes step and op into a Result, validating that every key
// step derived is on allowedKeys (nil means "no restriction"). This is the
// Go rendering of the original's per-subclass `_keys` whitelist: a
// constructor parameter rather than a subclass attribute, since Go has no
// class hierarchy to hang it from.
//
// Returns ErrUnexpectedKey if step derived a key not in allowedKeys.
func NewResult(step *Step, op Operation, allowedKeys []string) (*Result, error) {
	if allowedKeys != nil {
		allowed := make(map[string]struct{}, len(allowedKeys))
		for _, k := range allowedKeys {
			allowed[k] = struct{}{}
		}
		for k := range step.results {
			if _, ok := allowed[k]; !ok {
				return nil, ErrUnexpectedKey
			}
		}
	}

	return &Result{step: step, op: op, results: step.Results()}, nil
}

// Result carries the Step and Operation that produced a value, plus
// whatever derived results the Step accumulated.
type Result struct {
	step    *Step
	op      Operation
	results map[string]interface{}
}

// Step returns the Step that produced r.
func (r *Result) Step() *Step { return r.step }

// Operation returns the Operation record that produced r.
func (r *Result) Operation() Operation { return r.op }

// Value returns the derived result stored under key, if any.
func (r *Result) Value(key string) (interface{}, bool) {
	v, ok := r.results[key]
	return v, ok
}

// Dependencies returns every *Result referenced directly by r's Operation
// arguments, positional args first (in order) then keyword args (sorted by
// key for determinism).
func (r *Result) Dependencies() []*Result {
	var deps []*Result
	for _, a := range r.op.Args {
		if d, ok := a.(*Result); ok {
			deps = append(deps, d)
		}
	}

	keys := make([]string, 0, len(r.op.Kwargs))
	for k := range r.op.Kwargs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if d, ok := r.op.Kwargs[k].(*Result); ok {
			deps = append(deps, d)
		}
	}

	return deps
}

// NestedDependencies returns the transitive closure of r's dependencies,
// toposorted leaves-first (r itself is last). Returns ErrCyclicResults if
// the dependency graph contains a cycle.
func (r *Result) NestedDependencies() ([]*Result, error) {
	deps := make(map[*Result][]*Result)
	order := []*Result{r}
	seen := map[*Result]bool{r: true}

	for i := 0; i < len(order); i++ {
		cur := order[i]
		ds := cur.Dependencies()
		deps[cur] = ds
		for _, d := range ds {
			if !seen[d] {
				seen[d] = true
				order = append(order, d)
			}
		}
	}

	return toposortResults(order, deps)
}

type resultState int

const (
	resultWhite resultState = iota
	resultGray
	resultBlack
)

// toposortResults visits order (a deterministic discovery order, root
// first) depth-first, appending each node after all of its dependencies —
// the standard leaves-first topological ordering. A Gray node reached again
// indicates a cycle.
func toposortResults(order []*Result, deps map[*Result][]*Result) ([]*Result, error) {
	state := make(map[*Result]resultState, len(order))
	out := make([]*Result, 0, len(order))

	var visit func(*Result) error
	visit = func(r *Result) error {
		switch state[r] {
		case resultGray:
			return ErrCyclicResults
		case resultBlack:
			return nil
		}
		state[r] = resultGray
		for _, d := range deps[r] {
			if err := visit(d); err != nil {
				return err
			}
		}
		state[r] = resultBlack
		out = append(out, r)
		return nil
	}

	for _, r := range order {
		if err := visit(r); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Explain renders r's derivation trace. If nested is true, it renders every
// transitive dependency's Step.Explain() as well, leaves first, followed by
// r's own.
func (r *Result) Explain(nested bool) (string, error) {
	results := []*Result{r}
	if nested {
		nd, err := r.NestedDependencies()
		if err != nil {
			return "", err
		}
		results = nd
	}

	out := ""
	for i, res := range results {
		if i > 0 {
			out += "\n"
		}
		out += res.step.Explain()
	}

	return out, nil
}
