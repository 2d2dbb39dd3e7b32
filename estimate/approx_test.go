package estimate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/dataset"
	"github.com/leoware/pqp-go/estimand"
	"github.com/leoware/pqp-go/estimate"
	"github.com/leoware/pqp-go/symbols"
)

func mustP(t *testing.T, vars, given []interface{}) algebra.P {
	t.Helper()
	p, err := algebra.NewP(vars, given)
	require.NoError(t, err)
	return p
}

func mustEq(t *testing.T, v symbols.Variable, val interface{}) symbols.EqualityEvent {
	t.Helper()
	ev, err := symbols.NewEqualityEvent(v, val)
	require.NoError(t, err)
	return ev
}

func TestEstimate_ConditionalProbabilityNoPrior(t *testing.T) {
	x := symbols.MustVariable("x")
	y := symbols.MustVariable("y")

	view, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0, 1, 1},
		"y": []int64{0, 1, 0},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view)
	require.NoError(t, err)

	p1 := mustP(t, []interface{}{mustEq(t, y, int64(1))}, []interface{}{mustEq(t, x, int64(1))})
	v1, err := est.Estimate(estimand.NewGeneric(p1), nil)
	require.NoError(t, err)
	val1, err := v1.Value()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, val1, 1e-9)

	p0 := mustP(t, []interface{}{mustEq(t, y, int64(1))}, []interface{}{mustEq(t, x, int64(0))})
	v0, err := est.Estimate(estimand.NewGeneric(p0), nil)
	require.NoError(t, err)
	val0, err := v0.Value()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, val0, 1e-9)
}

func TestEstimate_ConditionalProbabilityWithPrior(t *testing.T) {
	x := symbols.MustVariable("x")
	y := symbols.MustVariable("y")

	view, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0, 1, 1},
		"y": []int64{0, 1, 0},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view, estimate.WithPrior(1))
	require.NoError(t, err)

	pGivenX0 := mustP(t, []interface{}{mustEq(t, y, int64(1))}, []interface{}{mustEq(t, x, int64(0))})
	r, err := est.Estimate(estimand.NewGeneric(pGivenX0), nil)
	require.NoError(t, err)
	v, err := r.Value()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, v, 1e-9)

	pY1 := mustP(t, []interface{}{mustEq(t, y, int64(1))}, nil)
	r2, err := est.Estimate(estimand.NewGeneric(pY1), nil)
	require.NoError(t, err)
	v2, err := r2.Value()
	require.NoError(t, err)
	assert.InDelta(t, 3.0/8.0, v2, 1e-9)
}

func TestEstimate_MarginalSum(t *testing.T) {
	x := symbols.MustVariable("x")
	y := symbols.MustVariable("y")

	view, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0, 0, 1, 1},
		"y": []int64{0, 1, 0, 1},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view)
	require.NoError(t, err)

	joint, err := algebra.NewP([]interface{}{mustEq(t, y, int64(1)), x}, nil)
	require.NoError(t, err)
	marginal := algebra.NewMarginal([]symbols.Variable{x}, joint)

	r, err := est.Estimate(estimand.NewGeneric(marginal), nil)
	require.NoError(t, err)
	v, err := r.Value()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-9)
}

func TestEstimate_ZeroPriorZeroObservationsIsPositivityError(t *testing.T) {
	x := symbols.MustVariable("x")
	y := symbols.MustVariable("y")

	view, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0, 0, 0},
		"y": []int64{0, 0, 0},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view)
	require.NoError(t, err)

	p := mustP(t, []interface{}{mustEq(t, y, int64(1))}, []interface{}{mustEq(t, x, int64(1))})
	_, err = est.Estimate(estimand.NewGeneric(p), nil)
	assert.ErrorIs(t, err, estimate.ErrPositivity)
}

func TestEstimate_BindingsAppliedBeforeEvaluation(t *testing.T) {
	x := symbols.MustVariable("x")
	y := symbols.MustVariable("y")

	view, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0, 1, 1},
		"y": []int64{0, 1, 0},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view)
	require.NoError(t, err)

	p, err := algebra.NewP([]interface{}{y}, []interface{}{x})
	require.NoError(t, err)

	r, err := est.Estimate(estimand.NewGeneric(p), map[symbols.Variable]interface{}{
		y: int64(1),
		x: int64(1),
	})
	require.NoError(t, err)
	v, err := r.Value()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-9)
}

func TestEstimate_JointWithPriorOverThreeBinaryVariables(t *testing.T) {
	x := symbols.MustVariable("x")
	y := symbols.MustVariable("y")
	z := symbols.MustVariable("z")

	view, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0},
		"y": []int64{0},
		"z": []int64{0},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view, estimate.WithPrior(1))
	require.NoError(t, err)

	allZero := mustP(t, []interface{}{
		mustEq(t, x, int64(0)), mustEq(t, y, int64(0)), mustEq(t, z, int64(0)),
	}, nil)
	r, err := est.Estimate(estimand.NewGeneric(allZero), nil)
	require.NoError(t, err)
	v, err := r.Value()
	require.NoError(t, err)
	assert.InDelta(t, 9.0/16.0, v, 1e-9)

	allOne := mustP(t, []interface{}{
		mustEq(t, x, int64(1)), mustEq(t, y, int64(1)), mustEq(t, z, int64(1)),
	}, nil)
	r, err = est.Estimate(estimand.NewGeneric(allOne), nil)
	require.NoError(t, err)
	v, err = r.Value()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/16.0, v, 1e-9)
}

func TestEstimate_HedgeIsRejected(t *testing.T) {
	view, err := dataset.NewView(map[string]interface{}{"x": []int64{0, 1}})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view)
	require.NoError(t, err)

	_, err = est.Estimate(estimand.NewGeneric(algebra.NewHedge()), nil)
	assert.ErrorIs(t, err, estimate.ErrHedge)
}

func TestEstimate_UnidentifiedInterventionIsRejected(t *testing.T) {
	x := symbols.MustVariable("x")
	y := symbols.MustVariable("y")

	view, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0, 1},
		"y": []int64{1, 0},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view)
	require.NoError(t, err)

	doX := symbols.Do(mustEq(t, x, int64(1)))
	p, err := algebra.NewP([]interface{}{mustEq(t, y, int64(1))}, []interface{}{doX})
	require.NoError(t, err)

	_, err = est.Estimate(estimand.NewGeneric(p), nil)
	assert.ErrorIs(t, err, estimate.ErrUnidentifiedIntervention)
}
