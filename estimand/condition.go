// File: condition.go
// Role: validateCondition — accepts either a map[symbols.Variable]interface{}
// or a []symbols.EqualityEvent and normalizes both into a single
// []symbols.EqualityEvent, the form ATE/CATE build their expressions from.
package estimand

import (
	"sort"

	"github.com/leoware/pqp-go/symbols"
)

// validateCondition normalizes condition (a map[symbols.Variable]interface{}
// or a []symbols.EqualityEvent) into a slice of EqualityEvent, sorted by
// variable name for determinism when condition is a map.
//
// Returns ErrConditionType if condition is neither accepted shape. Returns
// whatever error symbols.NewEqualityEvent reports (e.g. ErrValueIsVariable)
// if a map entry cannot form a valid EqualityEvent.
func validateCondition(condition interface{}) ([]symbols.EqualityEvent, error) {
	switch c := condition.(type) {
	case []symbols.EqualityEvent:
		out := append([]symbols.EqualityEvent(nil), c...)
		return out, nil

	case map[symbols.Variable]interface{}:
		vars := make([]symbols.Variable, 0, len(c))
		for v := range c {
			vars = append(vars, v)
		}
		sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })

		out := make([]symbols.EqualityEvent, 0, len(c))
		for _, v := range vars {
			ev, err := symbols.NewEqualityEvent(v, c[v])
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
		return out, nil

	default:
		return nil, ErrConditionType
	}
}
