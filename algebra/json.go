// File: json.go
// Role: the stable, bit-exact wire format used to hand an expression to the
// identification kernel and read its result back. Only pure-variable P,
// Product, Quotient, Marginal, and Hedge cross this boundary — by the time
// identification runs, a P's vars/given hold bare Variables, never
// EqualityEvents or InterventionEvents (those are reapplied by the caller
// once IDC returns). Difference, Expectation, and Literal never appear here.
package algebra

import (
	"encoding/json"

	"github.com/leoware/pqp-go/symbols"
)

type wireExpr struct {
	Type  string      `json:"type"`
	Vars  []string    `json:"vars,omitempty"`
	Given []string    `json:"given,omitempty"`
	Exprs []*wireExpr `json:"exprs,omitempty"`
	Numer *wireExpr   `json:"numer,omitempty"`
	Denom *wireExpr   `json:"denom,omitempty"`
	Sub   []string    `json:"sub,omitempty"`
	Exp   *wireExpr   `json:"exp,omitempty"`
}

func namesOf(items []interface{}) ([]string, error) {
	out := make([]string, len(items))
	for i, item := range items {
		v, ok := item.(symbols.Variable)
		if !ok {
			return nil, ErrUnsupportedJSONKind
		}
		out[i] = v.Name
	}
	return out, nil
}

func variablesOf(names []string) []interface{} {
	out := make([]interface{}, len(names))
	for i, n := range names {
		out[i] = symbols.MustVariable(n)
	}
	return out
}

func exprToWire(e Expr) (*wireExpr, error) {
	switch x := e.(type) {
	case P:
		vars, err := namesOf(x.Vars)
		if err != nil {
			return nil, err
		}
		given, err := namesOf(x.Given)
		if err != nil {
			return nil, err
		}
		return &wireExpr{Type: "P", Vars: vars, Given: given}, nil
	case Product:
		exprs := make([]*wireExpr, len(x.Children))
		for i, c := range x.Children {
			we, err := exprToWire(c)
			if err != nil {
				return nil, err
			}
			exprs[i] = we
		}
		return &wireExpr{Type: "Product", Exprs: exprs}, nil
	case Quotient:
		n, err := exprToWire(x.Numer)
		if err != nil {
			return nil, err
		}
		d, err := exprToWire(x.Denom)
		if err != nil {
			return nil, err
		}
		return &wireExpr{Type: "Quotient", Numer: n, Denom: d}, nil
	case Marginal:
		sub := make([]string, len(x.Bound))
		for i, v := range x.Bound {
			sub[i] = v.Name
		}
		exp, err := exprToWire(x.Body)
		if err != nil {
			return nil, err
		}
		return &wireExpr{Type: "Marginal", Sub: sub, Exp: exp}, nil
	case Hedge:
		return &wireExpr{Type: "Hedge"}, nil
	default:
		return nil, ErrUnsupportedJSONKind
	}
}

func wireToExpr(w *wireExpr) (Expr, error) {
	if w == nil {
		return nil, ErrUnknownExpressionKind
	}
	switch w.Type {
	case "P":
		return NewP(variablesOf(w.Vars), variablesOf(w.Given))
	case "Product":
		children := make([]Expr, len(w.Exprs))
		for i, we := range w.Exprs {
			c, err := wireToExpr(we)
			if err != nil {
				return nil, err
			}
			children[i] = c
		}
		return NewProduct(children...), nil
	case "Quotient":
		n, err := wireToExpr(w.Numer)
		if err != nil {
			return nil, err
		}
		d, err := wireToExpr(w.Denom)
		if err != nil {
			return nil, err
		}
		return NewQuotient(n, d), nil
	case "Marginal":
		bound := make([]symbols.Variable, len(w.Sub))
		for i, name := range w.Sub {
			bound[i] = symbols.MustVariable(name)
		}
		body, err := wireToExpr(w.Exp)
		if err != nil {
			return nil, err
		}
		return NewMarginal(bound, body), nil
	case "Hedge":
		return NewHedge(), nil
	default:
		return nil, ErrUnknownExpressionKind
	}
}

// MarshalJSON encodes e into the stable wire format shared with the
// identification kernel. Only P, Product, Quotient, Marginal, and Hedge are
// supported, and every P's vars/given must be bare Variables —
// EqualityEvents and InterventionEvents yield ErrUnsupportedJSONKind.
func MarshalJSON(e Expr) ([]byte, error) {
	w, err := exprToWire(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// ParseJSON decodes data produced by MarshalJSON back into an Expr.
func ParseJSON(data []byte) (Expr, error) {
	var w wireExpr
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return wireToExpr(&w)
}
