package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNestedDependencies_DetectsCycle builds a genuine a -> b -> a
// dependency cycle. This requires poking at unexported fields after
// construction, since NewResult has no way to forward-reference a Result
// that doesn't exist yet — exactly why cycles can't arise from ordinary,
// bottom-up use of the package.
func TestNestedDependencies_DetectsCycle(t *testing.T) {
	a := &Result{step: NewStep("a"), op: NewOperation("a.fn", nil, nil)}
	b := &Result{step: NewStep("b"), op: NewOperation("b.fn", []interface{}{a}, nil)}
	a.op = NewOperation("a.fn", []interface{}{b}, nil)

	_, err := a.NestedDependencies()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCyclicResults)
}
