package estimate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/dataset"
	"github.com/leoware/pqp-go/estimate"
	"github.com/leoware/pqp-go/symbols"
)

func TestNewMultinomialEstimator_CoercesRealColumnByDefault(t *testing.T) {
	view, err := dataset.NewView(map[string]interface{}{
		"x": []float64{0.1, 0.2, 0.8, 0.9},
	})
	require.NoError(t, err)

	est, err := estimate.NewMultinomialEstimator(view)
	require.NoError(t, err)

	dom, err := est.DomainOf("x")
	require.NoError(t, err)
	assert.Equal(t, symbols.CategoricalKind, dom.Kind())
}

func TestNewMultinomialEstimator_RejectsRealColumnWithoutCoerce(t *testing.T) {
	view, err := dataset.NewView(map[string]interface{}{
		"x": []float64{0.1, 0.2, 0.8, 0.9},
	})
	require.NoError(t, err)

	_, err = estimate.NewMultinomialEstimator(view, estimate.WithCoerce(false))
	assert.ErrorIs(t, err, estimate.ErrNotDiscreteDomain)
}

func TestNewMultinomialEstimator_ObservedMustBeSubset(t *testing.T) {
	view, err := dataset.NewView(map[string]interface{}{"x": []int64{0, 1}})
	require.NoError(t, err)

	_, err = estimate.NewMultinomialEstimator(view, estimate.WithObserved("z"))
	assert.ErrorIs(t, err, estimate.ErrObservedNotSubset)
}
