// File: entrypoint.go
// Role: the ledger-backed entry points a caller actually reaches for:
// IdentifyEstimand wraps the generic Identify walk in a ledger.Entrypoint
// so its assumptions and derivation are recorded, and IdentifyATE/IdentifyCATE
// are thin wrappers that build the corresponding estimand before identifying
// it.
package identify

import (
	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/cgraph"
	"github.com/leoware/pqp-go/estimand"
	"github.com/leoware/pqp-go/ledger"
)

// identificationResultKeys is the whitelist of derived keys an
// IdentificationResult may carry.
var identificationResultKeys = []string{"identified_estimand"}

// Expresser is the minimal shape IdentifyEstimand needs: anything that can
// unfold into an algebra.Expr. estimand.ATE/CATE/Generic all satisfy it.
type Expresser interface {
	Expression() (algebra.Expr, error)
}

// IdentificationResult wraps a ledger.Result whitelisted to exactly the
// derived key "identified_estimand".
type IdentificationResult struct {
	*ledger.Result
}

// IdentifiedEstimand returns the identified expression recorded on r.
func (r *IdentificationResult) IdentifiedEstimand() (algebra.Expr, error) {
	v, ok := r.Result.Value("identified_estimand")
	if !ok {
		return nil, ErrMissingIdentifiedEstimand
	}
	e, ok := v.(algebra.Expr)
	if !ok {
		return nil, ErrMissingIdentifiedEstimand
	}
	return e, nil
}

// IdentifyEstimand unfolds est and identifies it against g, recording the
// assumption of graph acyclicity and the identified expression as this
// call's sole derived value.
func IdentifyEstimand(est Expresser, g *cgraph.Graph) (*IdentificationResult, error) {
	op := ledger.NewOperation("identify.IdentifyEstimand", []interface{}{est}, nil)

	result, err := ledger.Entrypoint("Identification", op, identificationResultKeys, func(step *ledger.Step) error {
		step.Assume("Noncontradictory evidence")
		step.Assume("Acyclicity")
		step.Assume("Positivity")

		expr, err := est.Expression()
		if err != nil {
			return err
		}

		identified, err := Identify(expr, g)
		if err != nil {
			return err
		}

		return step.Derive("identified_estimand", identified)
	})
	if err != nil {
		return nil, err
	}

	return &IdentificationResult{Result: result}, nil
}

// IdentifyATE builds an ATE(outcome, treatment, control) and identifies it
// against g.
func IdentifyATE(outcome, treatment, control interface{}, g *cgraph.Graph) (*IdentificationResult, error) {
	ate, err := estimand.NewATE(outcome, treatment, control)
	if err != nil {
		return nil, err
	}
	return IdentifyEstimand(ate, g)
}

// IdentifyCATE builds a CATE(outcome, treatment, control, subpopulation)
// and identifies it against g.
func IdentifyCATE(outcome, treatment, control, subpopulation interface{}, g *cgraph.Graph) (*IdentificationResult, error) {
	cate, err := estimand.NewCATE(outcome, treatment, control, subpopulation)
	if err != nil {
		return nil, err
	}
	return IdentifyEstimand(cate, g)
}
