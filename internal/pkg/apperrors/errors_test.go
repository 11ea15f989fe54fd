package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomError_UnwrapsToSentinel(t *testing.T) {
	err := NewUnknownDepartmentError("Math")

	require.True(t, errors.Is(err, ErrUnknownDepartment))
	assert.Equal(t, "department 'Math' not found", err.Error())
	assert.Equal(t, map[string]interface{}{"department": "Math"}, DetailsOf(err))
}

func TestCustomError_FallsBackToWrappedMessage(t *testing.T) {
	err := &CustomError{Err: ErrEmptyName}
	assert.Equal(t, ErrEmptyName.Error(), err.Error())

	empty := &CustomError{}
	assert.Equal(t, "unknown error", empty.Error())
}

func TestNewValidationError(t *testing.T) {
	err := fmt.Errorf("adding instructor: %w", NewValidationError("salary cannot be negative"))

	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "salary cannot be negative")
	assert.Nil(t, DetailsOf(err))
}

func TestDetailsOf_FindsWrappedCustomError(t *testing.T) {
	wrapped := fmt.Errorf("adding department: %w", NewDuplicateNameError("CS"))

	require.ErrorIs(t, wrapped, ErrDuplicateName)
	assert.Equal(t, map[string]interface{}{"department": "CS"}, DetailsOf(wrapped))
}

func TestDetailsOf_NilForPlainErrors(t *testing.T) {
	assert.Nil(t, DetailsOf(ErrEmptyName))
}
