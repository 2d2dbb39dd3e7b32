// File: ate.go
// Role: ATE — the average treatment effect, E[Y|do(treatment)] -
// E[Y|do(control)]. Also the bare-binary-Variable shorthand (NewATE(y, x,
// nil) for a binary x means treatment=do(x=1), control=do(x=0)).
package estimand

import (
	"sort"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/symbols"
)

var ateLiteral = algebra.NewLiteralFactory("ATE", 2, " | ", "\\text{ATE}", " \\mid ")

// ATE is the average treatment effect of a treatment condition relative to a
// control condition on an outcome Variable.
type ATE struct {
	Outcome            symbols.Variable
	TreatmentCondition []symbols.EqualityEvent
	ControlCondition   []symbols.EqualityEvent
}

// NewATE builds an ATE. outcome must be a symbols.Variable.
//
// treatment and control are each either a map[symbols.Variable]interface{}
// or a []symbols.EqualityEvent, EXCEPT that treatment may instead be a bare
// symbols.Variable with a binary (or undeclared) Domain: in that case
// control must be nil, and the shorthand expands to treatment=(v=1),
// control=(v=0).
//
// Returns ErrOutcomeNotVariable, ErrControlMustBeOmitted,
// ErrTreatmentMustBeBinary, or ErrConditionType as appropriate.
func NewATE(outcome interface{}, treatment, control interface{}) (*ATE, error) {
	out, ok := outcome.(symbols.Variable)
	if !ok {
		return nil, ErrOutcomeNotVariable
	}

	if tv, isBareVar := treatment.(symbols.Variable); isBareVar {
		if control != nil {
			return nil, ErrControlMustBeOmitted
		}
		if tv.Domain != nil {
			if _, isBinary := tv.Domain.(symbols.BinaryDomain); !isBinary {
				return nil, ErrTreatmentMustBeBinary
			}
		}
		treatEv, err := symbols.NewEqualityEvent(tv, 1)
		if err != nil {
			return nil, err
		}
		ctrlEv, err := symbols.NewEqualityEvent(tv, 0)
		if err != nil {
			return nil, err
		}
		treatment = []symbols.EqualityEvent{treatEv}
		control = []symbols.EqualityEvent{ctrlEv}
	}

	tc, err := validateCondition(treatment)
	if err != nil {
		return nil, err
	}
	cc, err := validateCondition(control)
	if err != nil {
		return nil, err
	}

	return &ATE{Outcome: out, TreatmentCondition: tc, ControlCondition: cc}, nil
}

// TreatmentVars returns the distinct Variables referenced across the
// treatment and control conditions, sorted by name.
func (a *ATE) TreatmentVars() []symbols.Variable {
	seen := make(map[string]symbols.Variable)
	for _, c := range a.TreatmentCondition {
		seen[c.Var.Name] = c.Var
	}
	for _, c := range a.ControlCondition {
		seen[c.Var.Name] = c.Var
	}
	out := make([]symbols.Variable, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

func doGiven(events []symbols.EqualityEvent) ([]interface{}, error) {
	out := make([]interface{}, len(events))
	for i, ev := range events {
		ie, err := symbols.NewInterventionEvent(ev)
		if err != nil {
			return nil, err
		}
		out[i] = ie
	}
	return out, nil
}

// Expression implements Estimand: E[outcome|do(treatment)] - E[outcome|do(control)].
func (a *ATE) Expression() (algebra.Expr, error) {
	treatGiven, err := doGiven(a.TreatmentCondition)
	if err != nil {
		return nil, err
	}
	ctrlGiven, err := doGiven(a.ControlCondition)
	if err != nil {
		return nil, err
	}

	pTreat, err := algebra.NewP([]interface{}{a.Outcome}, treatGiven)
	if err != nil {
		return nil, err
	}
	pCtrl, err := algebra.NewP([]interface{}{a.Outcome}, ctrlGiven)
	if err != nil {
		return nil, err
	}

	treatExp := algebra.NewExpectation(a.Outcome, pTreat)
	ctrlExp := algebra.NewExpectation(a.Outcome, pCtrl)

	return algebra.NewDifference(treatExp, ctrlExp), nil
}

// Literal implements Estimand: ATE(outcome | treatment_vars).
func (a *ATE) Literal() (algebra.Expr, error) {
	outcomeArg := algebra.NewVarSetArg([]symbols.Variable{a.Outcome}, "", "")
	treatArg := algebra.NewVarSetArg(a.TreatmentVars(), ", ", ", ")

	lit, err := ateLiteral.New(outcomeArg, treatArg)
	if err != nil {
		return nil, err
	}
	return lit, nil
}
