package errors

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("test_field", "test message", "test_value")

	assert.Equal(t, "test_field", err.Field)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test_value", err.Value)
	assert.Equal(t, "validation error on field 'test_field': test message", err.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("field1", "message1", nil))
	assert.Equal(t, "validation failed: field1 message1", errs.Error())

	errs = append(errs, *NewValidationError("field2", "message2", nil))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("correct_count", "must be between 0 and 40", "correct_count", 41)

	assert.Equal(t, "correct_count", err.Rule)
	assert.Equal(t, 41, err.Value)
}

func TestToValidationErrors(t *testing.T) {
	type request struct {
		SessionID string `validate:"required"`
		Count     int    `validate:"min=1"`
	}

	err := validator.New().Struct(request{})
	require.Error(t, err)

	errs := ToValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "SessionID", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "required", errs[0].Rule)
	assert.Equal(t, "must be at least 1", errs[1].Message)
}

func TestToValidationErrors_Wrapped(t *testing.T) {
	single := NewValidationError("count", "must be at least 1", 0)
	errs := ToValidationErrors(fmt.Errorf("random tests: %w", single))
	require.Len(t, errs, 1)
	assert.Equal(t, "count", errs[0].Field)

	assert.Nil(t, ToValidationErrors(fmt.Errorf("plain")))
}
