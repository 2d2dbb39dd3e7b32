package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/symbols"
)

func TestAssign_RewritesBareVariableToEqualityEvent(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	p, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)

	out, err := algebra.Assign(p, x, 1)
	require.NoError(t, err)

	got := out.(algebra.P)
	ev, ok := got.Given[0].(symbols.EqualityEvent)
	require.True(t, ok)
	assert.Equal(t, "x", ev.Var.Name)
	assert.Equal(t, 1, ev.Value)
}

func TestAssign_AssignmentsCommute(t *testing.T) {
	x, y, z := symbols.MustVariable("x"), symbols.MustVariable("y"), symbols.MustVariable("z")
	p, err := algebra.NewP([]interface{}{z}, []interface{}{x, y})
	require.NoError(t, err)

	a, err := algebra.Assign(p, x, 1)
	require.NoError(t, err)
	a, err = algebra.Assign(a, y, 2)
	require.NoError(t, err)

	b, err := algebra.Assign(p, y, 2)
	require.NoError(t, err)
	b, err = algebra.Assign(b, x, 1)
	require.NoError(t, err)

	assert.True(t, algebra.Equal(a, b))
}

func TestAssign_RejectsVariableAsValue(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	p, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)

	_, err = algebra.Assign(p, x, y)
	assert.ErrorIs(t, err, algebra.ErrValueIsVariable)
}

func TestAssign_ConflictingConstraintErrors(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	p, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)

	bound, err := algebra.Assign(p, x, 1)
	require.NoError(t, err)

	_, err = algebra.Assign(bound, x, 0)
	assert.ErrorIs(t, err, algebra.ErrContradiction)
}

func TestAssign_DoesNotDescendThroughShadowingMarginal(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	body, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)
	marginal := algebra.NewMarginal([]symbols.Variable{x}, body)

	out, err := algebra.Assign(marginal, x, 1)
	require.NoError(t, err)

	assert.True(t, algebra.Equal(out, marginal))
}

func TestIntervene_WrapsGivenOccurrenceInDo(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	p, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)

	out, err := algebra.Intervene(p, x)
	require.NoError(t, err)

	got := out.(algebra.P)
	ie, ok := got.Given[0].(symbols.InterventionEvent)
	require.True(t, ok)
	assert.Equal(t, "x", ie.GetVar().Name)
}

func TestIntervene_DoesNotDescendThroughShadowingMarginal(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	body, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)
	marginal := algebra.NewMarginal([]symbols.Variable{x}, body)

	out, err := algebra.Intervene(marginal, x)
	require.NoError(t, err)

	assert.True(t, algebra.Equal(out, marginal))
}

func TestFreeVariables_ExcludesMarginalShadowedVars(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	body, err := algebra.NewP([]interface{}{y, x}, nil)
	require.NoError(t, err)
	marginal := algebra.NewMarginal([]symbols.Variable{x}, body)

	free := algebra.FreeVariables(marginal)

	require.Len(t, free, 1)
	assert.Equal(t, "y", free[0].Name)
}

func TestFreeVariables_BoundValuesAreNotFree(t *testing.T) {
	x, y := symbols.MustVariable("x"), symbols.MustVariable("y")
	p, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)

	bound, err := algebra.Assign(p, x, 1)
	require.NoError(t, err)

	free := algebra.FreeVariables(bound)
	require.Len(t, free, 1)
	assert.Equal(t, "y", free[0].Name)
}
