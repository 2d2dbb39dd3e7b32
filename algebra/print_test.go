package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/symbols"
)

func TestASCII_ConditionalProbability(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	p, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)

	assert.Equal(t, "P(y | x)", algebra.ASCII(p))
}

func TestASCII_EmptyPIsOne(t *testing.T) {
	p, err := algebra.NewP(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "1", algebra.ASCII(p))
}

func TestASCII_Hedge(t *testing.T) {
	assert.Equal(t, "FAIL", algebra.ASCII(algebra.NewHedge()))
}

func TestLatex_Quotient(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	py, _ := algebra.NewP([]interface{}{y}, nil)
	px, _ := algebra.NewP([]interface{}{x}, nil)

	q := algebra.NewQuotient(py, px)
	assert.Equal(t, "{P(y) \\over P(x)}", algebra.Latex(q))
}

func TestLiteral_ASCIIUsesFactorySeparator(t *testing.T) {
	factory := algebra.NewLiteralFactory("ATE", 2, ", ", "\\text{ATE}", ", ")
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	px, _ := algebra.NewP([]interface{}{x}, nil)
	py, _ := algebra.NewP([]interface{}{y}, nil)

	lit, err := factory.New(px, py)
	require.NoError(t, err)

	assert.Equal(t, "ATE(P(x), P(y))", algebra.ASCII(lit))
	assert.Equal(t, "\\text{ATE}(P(x), P(y))", algebra.Latex(lit))
}

func TestLiteralFactory_RejectsWrongArity(t *testing.T) {
	factory := algebra.NewLiteralFactory("ATE", 1, ", ", "\\text{ATE}", ", ")
	x := symbols.MustVariable("x")
	px, _ := algebra.NewP([]interface{}{x}, nil)

	_, err := factory.New(px, px)
	assert.ErrorIs(t, err, algebra.ErrTypeMismatch)
}
