package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/ledger"
)

func TestEntrypoint_HappyPath(t *testing.T) {
	op := ledger.NewOperation("pkg.Fn", []interface{}{1}, nil)

	result, err := ledger.Entrypoint("Fn", op, []string{"value"}, func(step *ledger.Step) error {
		step.Assume("linearity")
		return step.Derive("value", 99)
	})
	require.NoError(t, err)

	v, ok := result.Value("value")
	require.True(t, ok)
	assert.Equal(t, 99, v)
	assert.Equal(t, op.FuncID, result.Operation().FuncID)
}

func TestEntrypoint_KeyValidationErrorTakesPrecedence(t *testing.T) {
	op := ledger.NewOperation("pkg.Fn", nil, nil)

	_, err := ledger.Entrypoint("Fn", op, []string{"value"}, func(step *ledger.Step) error {
		return step.Derive("unexpected", 1)
	})
	assert.ErrorIs(t, err, ledger.ErrUnexpectedKey)
}

func TestEntrypoint_FnErrorPropagates(t *testing.T) {
	sentinel := errors.New("boom")
	op := ledger.NewOperation("pkg.Fn", nil, nil)

	_, err := ledger.Entrypoint("Fn", op, nil, func(step *ledger.Step) error {
		step.Write("attempted something")
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
