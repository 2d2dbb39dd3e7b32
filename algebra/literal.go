// File: literal.go
// Role: Literal — an opaque n-ary constructor used to represent user-facing
// estimand names (ATE(·), CATE(·)) for display purposes. A LiteralFactory is
// created once per name and stamps out Literal instances of fixed arity.
package algebra

import "github.com/leoware/pqp-go/symbols"

// LiteralFactory parameterizes a family of Literal expressions sharing a
// name, a fixed arity, and ASCII/LaTeX rendering conventions. Two Literals
// are equal iff they come from equal factories (same Name, Arity,
// separators and LaTeX name) and have positionally equal Args (see
// Canonical/Equal).
type LiteralFactory struct {
	Name           string
	Arity          int
	Separator      string
	LatexName      string
	LatexSeparator string
}

// NewLiteralFactory builds a factory for a named, fixed-arity Literal
// variant, e.g. NewLiteralFactory("ATE", 1, ", ", "\\text{ATE}", ", ").
func NewLiteralFactory(name string, arity int, separator, latexName, latexSeparator string) LiteralFactory {
	return LiteralFactory{
		Name:           name,
		Arity:          arity,
		Separator:      separator,
		LatexName:      latexName,
		LatexSeparator: latexSeparator,
	}
}

// Literal is an instance of a LiteralFactory's variant, holding Arity
// positional Expr arguments.
type Literal struct {
	Factory LiteralFactory
	Args    []Expr
}

func (Literal) isExpr() {}

// New stamps out a Literal from f with the given args. Returns
// ErrTypeMismatch if len(args) != f.Arity.
func (f LiteralFactory) New(args ...Expr) (Literal, error) {
	if len(args) != f.Arity {
		return Literal{}, ErrTypeMismatch
	}
	out := append([]Expr(nil), args...)

	return Literal{Factory: f, Args: out}, nil
}

// literalString renders the default, factory-driven ASCII form:
// Name(arg1<sep>arg2<sep>...).
func (l Literal) literalString(render func(Expr) string) string {
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = render(a)
	}
	out := l.Factory.Name + "("
	for i, p := range parts {
		if i > 0 {
			out += l.Factory.Separator
		}
		out += p
	}
	out += ")"

	return out
}

func (l Literal) latexString(render func(Expr) string) string {
	parts := make([]string, len(l.Args))
	for i, a := range l.Args {
		parts[i] = render(a)
	}
	out := l.Factory.LatexName + "("
	for i, p := range parts {
		if i > 0 {
			out += l.Factory.LatexSeparator
		}
		out += p
	}
	out += ")"

	return out
}

// varSet is a display-only leaf rendering a list of bare variable names
// joined by a separator. It exists solely so a Literal can carry a
// variable-count-independent argument (e.g. an estimand's treatment-variable
// set) while keeping the factory's Arity fixed. It is never produced by
// identification and is not part of the JSON wire format.
type varSet struct {
	Vars     []symbols.Variable
	Sep      string
	LatexSep string
}

func (varSet) isExpr() {}

// NewVarSetArg returns an Expr rendering vars joined by sep in ASCII form
// and by latexSep in LaTeX form. Intended for use as a Literal argument
// representing a list of variables; not a general-purpose expression node.
func NewVarSetArg(vars []symbols.Variable, sep, latexSep string) Expr {
	out := append([]symbols.Variable(nil), vars...)
	return varSet{Vars: out, Sep: sep, LatexSep: latexSep}
}
