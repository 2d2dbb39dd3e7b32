// File: print.go
// Role: ASCII and LaTeX pretty printers for every Expr variant, plus the
// equivalent renderers for the Variable/EqualityEvent/InterventionEvent
// items that live inside a P's Vars/Given slices.
//
// AI-Hints (file):
//   - These printers render the tree AS GIVEN (insertion order); use
//     Canonical(e) first if a canonical (sorted) rendering is wanted.
package algebra

import (
	"fmt"
	"strings"

	"github.com/leoware/pqp-go/symbols"
)

// itemASCII renders a single P.Vars/P.Given item (Variable, EqualityEvent,
// or InterventionEvent) in ASCII form.
func itemASCII(item interface{}) string {
	switch v := item.(type) {
	case symbols.Variable:
		return v.String()
	case symbols.EqualityEvent:
		return v.String()
	case symbols.InterventionEvent:
		return v.String()
	default:
		return "?"
	}
}

// itemLatex renders a single P.Vars/P.Given item in LaTeX form.
func itemLatex(item interface{}) string {
	switch v := item.(type) {
	case symbols.Variable:
		return v.Name
	case symbols.EqualityEvent:
		return fmt.Sprintf("%s = %v", v.Var.Name, v.Value)
	case symbols.InterventionEvent:
		inner := v.Inner
		switch iv := inner.(type) {
		case symbols.Variable:
			return "\\text{do}(" + iv.Name + ")"
		case symbols.EqualityEvent:
			return fmt.Sprintf("\\text{do}(%s = %v)", iv.Var.Name, iv.Value)
		}
		return "\\text{do}(?)"
	default:
		return "?"
	}
}

// ASCII renders e as a human-readable ASCII string.
func ASCII(e Expr) string {
	switch x := e.(type) {
	case P:
		return pASCII(x)
	case Product:
		parts := make([]string, len(x.Children))
		for i, c := range x.Children {
			parts[i] = ASCII(c)
		}
		return strings.Join(parts, " * ")
	case Quotient:
		return "[" + ASCII(x.Numer) + " / " + ASCII(x.Denom) + "]"
	case Marginal:
		names := make([]string, len(x.Bound))
		for i, v := range x.Bound {
			names[i] = v.Name
		}
		return "Σ_(" + strings.Join(names, ", ") + ") [ " + ASCII(x.Body) + " ]"
	case Expectation:
		return "E_" + x.Bound.Name + "[" + ASCII(x.Body) + "]"
	case Difference:
		return "(" + ASCII(x.A) + " - " + ASCII(x.B) + ")"
	case Hedge:
		return "FAIL"
	case Literal:
		return x.literalString(ASCII)
	case varSet:
		names := make([]string, len(x.Vars))
		for i, v := range x.Vars {
			names[i] = v.Name
		}
		return strings.Join(names, x.Sep)
	default:
		return "?"
	}
}

func pASCII(p P) string {
	v := make([]string, len(p.Vars))
	for i, c := range p.Vars {
		v[i] = itemASCII(c)
	}
	g := make([]string, len(p.Given))
	for i, c := range p.Given {
		g[i] = itemASCII(c)
	}
	if len(v) == 0 {
		return "1"
	}
	out := "P(" + strings.Join(v, ", ")
	if len(g) > 0 {
		out += " | " + strings.Join(g, ", ")
	}
	out += ")"

	return out
}

// Latex renders e as a LaTeX string.
func Latex(e Expr) string {
	switch x := e.(type) {
	case P:
		return pLatex(x)
	case Product:
		parts := make([]string, len(x.Children))
		for i, c := range x.Children {
			parts[i] = Latex(c)
		}
		return strings.Join(parts, " ")
	case Quotient:
		return "{" + Latex(x.Numer) + " \\over " + Latex(x.Denom) + "}"
	case Marginal:
		names := make([]string, len(x.Bound))
		for i, v := range x.Bound {
			names[i] = v.Name
		}
		return "\\sum_{" + strings.Join(names, ", ") + "} \\big(" + Latex(x.Body) + "\\big)"
	case Expectation:
		return "E_{" + x.Bound.Name + "}\\big[" + Latex(x.Body) + "\\big]"
	case Difference:
		return "\\big(" + Latex(x.A) + " - " + Latex(x.B) + "\\big)"
	case Hedge:
		return "\\textbf{FAIL}"
	case Literal:
		return x.latexString(Latex)
	case varSet:
		names := make([]string, len(x.Vars))
		for i, v := range x.Vars {
			names[i] = v.Name
		}
		return strings.Join(names, x.LatexSep)
	default:
		return "?"
	}
}

func pLatex(p P) string {
	v := make([]string, len(p.Vars))
	for i, c := range p.Vars {
		v[i] = itemLatex(c)
	}
	g := make([]string, len(p.Given))
	for i, c := range p.Given {
		g[i] = itemLatex(c)
	}
	if len(v) == 0 {
		return "1"
	}
	out := "P(" + strings.Join(v, ", ")
	if len(g) > 0 {
		out += " \\mid " + strings.Join(g, ", ")
	}
	out += ")"

	return out
}

// String implements fmt.Stringer for every variant by delegating to ASCII,
// so Expr values print sensibly under %v/%s without an explicit ASCII call.
func (p P) String() string           { return ASCII(p) }
func (x Product) String() string     { return ASCII(x) }
func (x Quotient) String() string    { return ASCII(x) }
func (x Marginal) String() string    { return ASCII(x) }
func (x Expectation) String() string { return ASCII(x) }
func (x Difference) String() string  { return ASCII(x) }
func (Hedge) String() string         { return "FAIL" }
func (x Literal) String() string     { return ASCII(x) }
