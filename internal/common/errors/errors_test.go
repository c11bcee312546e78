package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPersistenceErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewPersistenceError("save catalog", cause)

	assert.Equal(t, ErrCodePersistence, err.Code)
	assert.True(t, err.IsInternal())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save catalog", err.Details["operation"])
	assert.Contains(t, err.Error(), "disk full")
	assert.NotEmpty(t, err.Stack)
}

func TestAsAppErrorFindsWrapped(t *testing.T) {
	inner := NewStateBusyError("catalog", nil)
	wrapped := fmt.Errorf("draw: %w", inner)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, got)
	assert.True(t, HasCode(wrapped, ErrCodeStateBusy))
	assert.False(t, HasCode(wrapped, ErrCodePersistence))
}

func TestAsAppErrorPlainError(t *testing.T) {
	_, ok := AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
	_, ok = AsAppError(nil)
	assert.False(t, ok)
	assert.False(t, IsAppError(nil))
}

func TestClassification(t *testing.T) {
	assert.True(t, NewUnauthorizedError("missing token").IsUnauthorized())
	assert.True(t, NewForbiddenError("not admin").IsUnauthorized())
	assert.True(t, NewValidationError("probability", "negative").IsValidation())
	assert.True(t, New(ErrCodeNotFound, "missing").IsNotFound())
	assert.Equal(t, "[UNAUTHORIZED] Unauthorized: missing token", NewUnauthorizedError("missing token").Error())
}
