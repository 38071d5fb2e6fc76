package services

import (
	"errors"

	apperrors "github.com/academiq/ielts-reading-service/internal/errors"
)

var (
	// Generic errors
	ErrValidationFailed = errors.New("validation failed")

	// Content errors
	ErrTestNotFound     = errors.New("reading test not found")
	ErrNoTestsAvailable = errors.New("no reading tests available")

	// Submission errors
	ErrSubmissionNotFound = errors.New("submission not found")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTestNotFound) ||
		errors.Is(err, ErrNoTestsAvailable) ||
		errors.Is(err, ErrSubmissionNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *ValidationError
	return errors.As(err, &single)
}
