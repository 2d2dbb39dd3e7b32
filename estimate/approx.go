// File: approx.go
// Role: the recursive evaluator — mirrors the original's
// _approx_p/_approx_marginal/_approx_product/_approx_quotient/
// _approx_difference/_approx_expectation dispatch, one method per Expr
// variant, translated from exceptions into explicit error returns.
package estimate

import (
	"fmt"
	"math"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/symbols"
)

// probabilitySumTolerance is the original's hard-coded Expectation
// sanity-check tolerance (source: pqp/estimation/multinomial_estimator.py).
const probabilitySumTolerance = 0.1

func (m *MultinomialEstimator) approx(e algebra.Expr) (float64, error) {
	switch x := e.(type) {
	case algebra.P:
		return m.approxP(x)
	case algebra.Product:
		return m.approxProduct(x)
	case algebra.Quotient:
		return m.approxQuotient(x)
	case algebra.Difference:
		return m.approxDifference(x)
	case algebra.Marginal:
		return m.approxMarginal(x)
	case algebra.Expectation:
		return m.approxExpectation(x)
	case algebra.Hedge:
		return 0, ErrHedge
	default:
		return 0, ErrUnsupportedExpr
	}
}

func (m *MultinomialEstimator) approxP(p algebra.P) (float64, error) {
	aConds := make(map[string]interface{}, len(p.Vars))
	aVars := make(map[string]struct{}, len(p.Vars))
	for _, item := range p.Vars {
		ev, ok := item.(symbols.EqualityEvent)
		if !ok {
			return 0, ErrFreeVariable
		}
		aConds[ev.Var.Name] = ev.Value
		aVars[ev.Var.Name] = struct{}{}
	}

	bConds := make(map[string]interface{}, len(p.Given))
	bVars := make(map[string]struct{}, len(p.Given))
	for _, item := range p.Given {
		switch x := item.(type) {
		case symbols.EqualityEvent:
			bConds[x.Var.Name] = x.Value
			bVars[x.Var.Name] = struct{}{}
		case symbols.InterventionEvent:
			return 0, ErrUnidentifiedIntervention
		case symbols.Variable:
			return 0, ErrFreeVariable
		default:
			return 0, ErrUnsupportedExpr
		}
	}

	nB, err := m.countRows(bConds)
	if err != nil {
		return 0, err
	}
	if nB == 0 && m.prior == 0 {
		return 0, fmt.Errorf("%w: %s", ErrPositivity, algebra.ASCII(p))
	}

	abConds := make(map[string]interface{}, len(aConds)+len(bConds))
	for k, v := range bConds {
		abConds[k] = v
	}
	for k, v := range aConds {
		abConds[k] = v
	}
	nAB, err := m.countRows(abConds)
	if err != nil {
		return 0, err
	}

	dB, err := m.domainSizeExcluding(bVars)
	if err != nil {
		return 0, err
	}
	abVars := make(map[string]struct{}, len(aVars)+len(bVars))
	for k := range aVars {
		abVars[k] = struct{}{}
	}
	for k := range bVars {
		abVars[k] = struct{}{}
	}
	dAB, err := m.domainSizeExcluding(abVars)
	if err != nil {
		return 0, err
	}

	numer := float64(nAB) + float64(dAB)*m.alphaCell
	denom := float64(nB) + float64(dB)*m.alphaCell

	return numer / denom, nil
}

func (m *MultinomialEstimator) approxProduct(x algebra.Product) (float64, error) {
	acc := 1.0
	for _, c := range x.Children {
		v, err := m.approx(c)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (m *MultinomialEstimator) approxQuotient(x algebra.Quotient) (float64, error) {
	numer, err := m.approx(x.Numer)
	if err != nil {
		return 0, err
	}
	denom, err := m.approx(x.Denom)
	if err != nil {
		return 0, err
	}
	if denom == 0 {
		return 0, fmt.Errorf("%w: division by zero in %s", ErrPositivity, algebra.ASCII(x))
	}
	return numer / denom, nil
}

func (m *MultinomialEstimator) approxDifference(x algebra.Difference) (float64, error) {
	a, err := m.approx(x.A)
	if err != nil {
		return 0, err
	}
	b, err := m.approx(x.B)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// approxMarginal unfolds a multi-variable marginal one bound variable at a
// time, matching the original's recursive peel-off-the-head behavior.
func (m *MultinomialEstimator) approxMarginal(x algebra.Marginal) (float64, error) {
	if len(x.Bound) == 0 {
		return m.approx(x.Body)
	}

	v := x.Bound[0]
	rest := x.Bound[1:]
	var body algebra.Expr = x.Body
	if len(rest) > 0 {
		body = algebra.NewMarginal(rest, x.Body)
	}

	dom, err := m.view.DomainOf(v)
	if err != nil {
		return 0, err
	}
	values, err := dom.EnumerateValues()
	if err != nil {
		return 0, err
	}

	acc := 0.0
	for _, val := range values {
		assigned, err := algebra.Assign(body, v, val)
		if err != nil {
			return 0, err
		}
		p, err := m.approx(assigned)
		if err != nil {
			return 0, err
		}
		acc += p
	}

	return acc, nil
}

func (m *MultinomialEstimator) approxExpectation(x algebra.Expectation) (float64, error) {
	dom, err := m.view.DomainOf(x.Bound)
	if err != nil {
		return 0, err
	}
	values, err := dom.EnumerateValues()
	if err != nil {
		return 0, err
	}

	acc, probAcc := 0.0, 0.0
	for _, val := range values {
		assigned, err := algebra.Assign(x.Body, x.Bound, val)
		if err != nil {
			return 0, err
		}
		p, err := m.approx(assigned)
		if err != nil {
			return 0, err
		}
		numericVal, ok := toFloat64(val)
		if !ok {
			return 0, fmt.Errorf("%w: non-numeric domain value %v for Expectation bound %s", ErrUnsupportedExpr, val, x.Bound.Name)
		}
		probAcc += p
		acc += p * numericVal
	}

	if math.Abs(probAcc-1) > probabilitySumTolerance {
		return 0, fmt.Errorf("%w: probabilities summed to %g", ErrNumerical, probAcc)
	}

	return acc, nil
}
