package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/dataset"
	"github.com/leoware/pqp-go/symbols"
)

func TestView_QuantizeDefaultBins(t *testing.T) {
	v, err := dataset.NewView(map[string]interface{}{
		"x": []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})
	require.NoError(t, err)

	q, err := v.Quantize("x")
	require.NoError(t, err)

	dom, err := q.DomainOf("x")
	require.NoError(t, err)
	assert.Equal(t, symbols.CategoricalKind, dom.Kind())
	assert.Equal(t, 2, dom.Cardinality())
}

func TestView_QuantizeExplicitBinCount(t *testing.T) {
	v, err := dataset.NewView(map[string]interface{}{
		"x": []int64{0, 10, 20, 30, 40},
	})
	require.NoError(t, err)

	q, err := v.Quantize("x", 5)
	require.NoError(t, err)

	dom, err := q.DomainOf("x")
	require.NoError(t, err)
	assert.LessOrEqual(t, dom.Cardinality(), 5)
}

func TestView_QuantizeNonNumericIsError(t *testing.T) {
	v, err := dataset.NewView(map[string]interface{}{"x": []string{"a", "b"}})
	require.NoError(t, err)

	_, err = v.Quantize("x")
	assert.ErrorIs(t, err, dataset.ErrQuantizeRequiresNumeric)
}

func TestView_QuantizeTooFewBinsIsError(t *testing.T) {
	v, err := dataset.NewView(map[string]interface{}{"x": []int64{1, 2, 3}})
	require.NoError(t, err)

	_, err = v.Quantize("x", 0)
	assert.ErrorIs(t, err, dataset.ErrTooFewBins)
}
