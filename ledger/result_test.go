package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/ledger"
)

func TestNewResult_RejectsKeyOutsideWhitelist(t *testing.T) {
	s := ledger.NewStep("test")
	require.NoError(t, s.Derive("unexpected", 1))

	op := ledger.NewOperation("fn", nil, nil)
	_, err := ledger.NewResult(s, op, []string{"value"})
	assert.ErrorIs(t, err, ledger.ErrUnexpectedKey)
}

func TestNewResult_NilAllowedKeysMeansUnrestricted(t *testing.T) {
	s := ledger.NewStep("test")
	require.NoError(t, s.Derive("anything", 1))

	op := ledger.NewOperation("fn", nil, nil)
	r, err := ledger.NewResult(s, op, nil)
	require.NoError(t, err)

	v, ok := r.Value("anything")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestResult_DependenciesFindsResultArgs(t *testing.T) {
	depStep := ledger.NewStep("dep")
	require.NoError(t, depStep.Derive("value", 1))
	depOp := ledger.NewOperation("dep.fn", nil, nil)
	dep, err := ledger.NewResult(depStep, depOp, []string{"value"})
	require.NoError(t, err)

	op := ledger.NewOperation("fn", []interface{}{dep}, map[string]interface{}{"other": dep})
	root, err := ledger.NewResult(ledger.NewStep("root"), op, nil)
	require.NoError(t, err)

	deps := root.Dependencies()
	require.Len(t, deps, 2)
	assert.Same(t, dep, deps[0])
	assert.Same(t, dep, deps[1])
}

func TestResult_NestedDependenciesToposortsLeavesFirst(t *testing.T) {
	leafOp := ledger.NewOperation("leaf.fn", nil, nil)
	leaf, err := ledger.NewResult(ledger.NewStep("leaf"), leafOp, nil)
	require.NoError(t, err)

	midOp := ledger.NewOperation("mid.fn", []interface{}{leaf}, nil)
	mid, err := ledger.NewResult(ledger.NewStep("mid"), midOp, nil)
	require.NoError(t, err)

	rootOp := ledger.NewOperation("root.fn", []interface{}{mid}, nil)
	root, err := ledger.NewResult(ledger.NewStep("root"), rootOp, nil)
	require.NoError(t, err)

	ordered, err := root.NestedDependencies()
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Same(t, leaf, ordered[0])
	assert.Same(t, mid, ordered[1])
	assert.Same(t, root, ordered[2])
}

func TestResult_Explain(t *testing.T) {
	step := ledger.NewStep("root")
	require.NoError(t, step.Derive("value", 7))
	op := ledger.NewOperation("fn", nil, nil)
	r, err := ledger.NewResult(step, op, []string{"value"})
	require.NoError(t, err)

	explained, err := r.Explain(false)
	require.NoError(t, err)
	assert.Contains(t, explained, "root")
	assert.Contains(t, explained, "Derived: value = 7")
}
