package estimand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/estimand"
	"github.com/leoware/pqp-go/symbols"
)

func TestNewCATE_Literal(t *testing.T) {
	y := symbols.MustVariable("y")
	x := symbols.MustVariable("x")
	z := symbols.MustVariable("z")

	cate, err := estimand.NewCATE(
		y,
		map[symbols.Variable]interface{}{x: 1},
		map[symbols.Variable]interface{}{x: 0},
		map[symbols.Variable]interface{}{z: 1},
	)
	require.NoError(t, err)

	lit, err := cate.Literal()
	require.NoError(t, err)

	assert.Equal(t, "CATE(y | x | z)", algebra.ASCII(lit))
	assert.Equal(t, "\\text{CATE}(y \\mid x \\mid z)", algebra.Latex(lit))
}

func TestNewCATE_ExpressionConditionsOnSubpopulation(t *testing.T) {
	y := symbols.MustVariable("y")
	x := symbols.MustVariable("x")
	z := symbols.MustVariable("z")

	cate, err := estimand.NewCATE(
		y,
		map[symbols.Variable]interface{}{x: 1},
		map[symbols.Variable]interface{}{x: 0},
		map[symbols.Variable]interface{}{z: 1},
	)
	require.NoError(t, err)

	exp, err := cate.Expression()
	require.NoError(t, err)

	diff, ok := exp.(algebra.Difference)
	require.True(t, ok)

	treatExp, ok := diff.A.(algebra.Expectation)
	require.True(t, ok)
	pTreat, ok := treatExp.Body.(algebra.P)
	require.True(t, ok)
	// do(x=1) plus the conditioning z=1: two given items.
	assert.Len(t, pTreat.Given, 2)
}

func TestNewCATE_InheritsATEErrors(t *testing.T) {
	y := symbols.MustVariable("y")

	_, err := estimand.NewCATE(y, "bad", nil, nil)
	assert.ErrorIs(t, err, estimand.ErrConditionType)
}
