package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leoware/pqp-go/symbols"
)

func TestBinaryDomain(t *testing.T) {
	d := symbols.NewBinaryDomain()
	assert.Equal(t, symbols.BinaryKind, d.Kind())
	assert.Equal(t, 2, d.Cardinality())
	assert.True(t, d.Contains(0))
	assert.True(t, d.Contains(1))
	assert.False(t, d.Contains(2))
	vals, err := d.EnumerateValues()
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{0, 1}, vals)
}

func TestCategoricalDomain(t *testing.T) {
	d, err := symbols.NewCategoricalDomain([]interface{}{"a", "b", "a"})
	assert.NoError(t, err)
	assert.Equal(t, 2, d.Cardinality())
	assert.True(t, d.Contains("a"))
	assert.False(t, d.Contains("c"))

	_, err = symbols.NewCategoricalDomain(nil)
	assert.ErrorIs(t, err, symbols.ErrEmptyDomain)
}

func TestIntegerDomain(t *testing.T) {
	d, err := symbols.NewIntegerDomain(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, d.Cardinality())
	assert.True(t, d.Contains(2))
	assert.False(t, d.Contains(4))
	vals, err := d.EnumerateValues()
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2, 3}, vals)

	_, err = symbols.NewIntegerDomain(5, 1)
	assert.ErrorIs(t, err, symbols.ErrEmptyDomain)
}

func TestRealDomain_InfiniteCardinality(t *testing.T) {
	d, err := symbols.NewRealDomain(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, -1, d.Cardinality())
	assert.True(t, d.Contains(0.5))
	assert.False(t, d.Contains(1.5))

	_, err = d.EnumerateValues()
	assert.ErrorIs(t, err, symbols.ErrNotDiscrete)
}
