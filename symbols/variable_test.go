package symbols_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leoware/pqp-go/symbols"
)

func TestNewVariable_EmptyName(t *testing.T) {
	_, err := symbols.NewVariable("")
	assert.ErrorIs(t, err, symbols.ErrEmptyName)
}

func TestVariable_EqualityByName(t *testing.T) {
	dom := symbols.NewBinaryDomain()
	x1, err := symbols.NewVariableWithDomain("x", dom)
	assert.NoError(t, err)
	x2, err := symbols.NewVariable("x")
	assert.NoError(t, err)
	y, err := symbols.NewVariable("y")
	assert.NoError(t, err)

	// Domain is metadata, not identity: x1 and x2 are equal despite differing domains.
	assert.True(t, x1.Equal(x2))
	assert.False(t, x1.Equal(y))
}

func TestMakeVars(t *testing.T) {
	vars := symbols.MakeVars("x", "y", "z")
	assert.Len(t, vars, 3)
	assert.Equal(t, "x", vars[0].Name)
	assert.Equal(t, "z", vars[2].Name)
}

func TestMustVariable_PanicsOnEmpty(t *testing.T) {
	defer func() {
		r := recover()
		assert.NotNil(t, r)
		err, ok := r.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, symbols.ErrEmptyName))
	}()
	symbols.MustVariable("")
}
