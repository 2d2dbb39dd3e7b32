// File: result.go
// Role: Estimate — the ledger.Entrypoint-wrapped evaluation entry point,
// and EstimationResult, the "value"-only Result subclass spec.md §4.7
// describes.
package estimate

import (
	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/ledger"
	"github.com/leoware/pqp-go/symbols"
)

// estimationResultKeys is the whitelist of derived keys an
// EstimationResult may carry.
var estimationResultKeys = []string{"value"}

// Expresser is the minimal shape Estimate needs from an estimand: anything
// that can unfold into an algebra.Expr. estimand.ATE/CATE/Generic all
// satisfy it without this package importing estimand.
type Expresser interface {
	Expression() (algebra.Expr, error)
}

// EstimationResult wraps a ledger.Result whitelisted to exactly the
// derived key "value".
type EstimationResult struct {
	*ledger.Result
}

// Value returns the estimated numeric value recorded on r.
func (r *EstimationResult) Value() (float64, error) {
	v, ok := r.Result.Value("value")
	if !ok {
		return 0, ErrMissingValue
	}
	f, ok := v.(float64)
	if !ok {
		return 0, ErrMissingValue
	}
	return f, nil
}

// Estimate evaluates est's Expression() against m's View, after applying
// bindings (a map from free Variable to the value it's fixed to) via
// algebra.Assign. It is the Go rendering of the original's
// @entrypoint-wrapped estimate method: a fresh Step records the assumptions
// and the brute-force note, and the recursive approx result is the Step's
// sole derived value.
//
// Returns ErrHedge if the expression still contains a Hedge,
// ErrFreeVariable if a variable remains unbound outside the observed set,
// or whatever approx error the recursive evaluation surfaces
// (ErrPositivity, ErrNumerical, ErrUnidentifiedIntervention).
func (m *MultinomialEstimator) Estimate(est Expresser, bindings map[symbols.Variable]interface{}) (*EstimationResult, error) {
	op := ledger.NewOperation("estimate.Estimate", []interface{}{est}, map[string]interface{}{"bindings": bindings})

	result, err := ledger.Entrypoint("Estimation", op, estimationResultKeys, func(step *ledger.Step) error {
		step.Assume("Multinomial likelihood")
		step.Assume("Dirichlet prior")

		expr, err := est.Expression()
		if err != nil {
			return err
		}

		for v, val := range bindings {
			expr, err = algebra.Assign(expr, v, val)
			if err != nil {
				return err
			}
		}

		if algebra.ContainsHedge(expr) {
			return ErrHedge
		}
		for _, fv := range algebra.FreeVariables(expr) {
			if _, ok := m.observed[fv.Name]; !ok {
				return ErrFreeVariable
			}
		}

		step.Write("Performing brute force estimation using a multinomial likelihood and dirichlet prior.")
		value, err := m.approx(expr)
		if err != nil {
			return err
		}

		return step.Derive("value", value)
	})
	if err != nil {
		return nil, err
	}

	return &EstimationResult{Result: result}, nil
}
