// File: cate.go
// Role: CATE — the conditional average treatment effect, an ATE measured
// within a fixed subpopulation (the condition is conditioned, not
// intervened upon).
package estimand

import (
	"sort"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/symbols"
)

var cateLiteral = algebra.NewLiteralFactory("CATE", 3, " | ", "\\text{CATE}", " \\mid ")

// CATE is an ATE restricted to a subpopulation.
type CATE struct {
	ATE
	Subpopulation []symbols.EqualityEvent
}

// NewCATE builds a CATE. subpopulation follows the same shape rules as
// treatment/control in NewATE (map[symbols.Variable]interface{} or
// []symbols.EqualityEvent); unlike treatment, it has no bare-Variable
// shorthand.
func NewCATE(outcome interface{}, treatment, control, subpopulation interface{}) (*CATE, error) {
	ate, err := NewATE(outcome, treatment, control)
	if err != nil {
		return nil, err
	}
	sub, err := validateCondition(subpopulation)
	if err != nil {
		return nil, err
	}

	return &CATE{ATE: *ate, Subpopulation: sub}, nil
}

// SubpopulationVars returns the distinct Variables referenced in the
// subpopulation condition, sorted by name.
func (c *CATE) SubpopulationVars() []symbols.Variable {
	seen := make(map[string]symbols.Variable, len(c.Subpopulation))
	for _, ev := range c.Subpopulation {
		seen[ev.Var.Name] = ev.Var
	}
	out := make([]symbols.Variable, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

func conditionGiven(events []symbols.EqualityEvent) []interface{} {
	out := make([]interface{}, len(events))
	for i, ev := range events {
		out[i] = ev
	}
	return out
}

// Expression implements Estimand: E[outcome|do(treatment), subpopulation] -
// E[outcome|do(control), subpopulation].
func (c *CATE) Expression() (algebra.Expr, error) {
	treatGiven, err := doGiven(c.TreatmentCondition)
	if err != nil {
		return nil, err
	}
	ctrlGiven, err := doGiven(c.ControlCondition)
	if err != nil {
		return nil, err
	}
	subGiven := conditionGiven(c.Subpopulation)

	pTreat, err := algebra.NewP([]interface{}{c.Outcome}, append(treatGiven, subGiven...))
	if err != nil {
		return nil, err
	}
	pCtrl, err := algebra.NewP([]interface{}{c.Outcome}, append(ctrlGiven, subGiven...))
	if err != nil {
		return nil, err
	}

	treatExp := algebra.NewExpectation(c.Outcome, pTreat)
	ctrlExp := algebra.NewExpectation(c.Outcome, pCtrl)

	return algebra.NewDifference(treatExp, ctrlExp), nil
}

// Literal implements Estimand: CATE(outcome | treatment_vars | subpopulation_vars).
func (c *CATE) Literal() (algebra.Expr, error) {
	outcomeArg := algebra.NewVarSetArg([]symbols.Variable{c.Outcome}, "", "")
	treatArg := algebra.NewVarSetArg(c.TreatmentVars(), ", ", ", ")
	subArg := algebra.NewVarSetArg(c.SubpopulationVars(), ", ", ", ")

	lit, err := cateLiteral.New(outcomeArg, treatArg, subArg)
	if err != nil {
		return nil, err
	}
	return lit, nil
}
