package services

import (
	"errors"

	apperrors "github.com/acadegrade/result-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")

	// Owner specific errors
	ErrOwnerNotFound   = errors.New("user not found - sync your identity first")
	ErrMissingIdentity = errors.New("verified identity claims are missing uid or email")

	// Sheet specific errors. Foreign sheets are reported the same way as
	// absent ones so the API never confirms another owner's sheet exists.
	ErrSheetNotFound = errors.New("sheet not found or not yours")

	// Semester / course specific errors
	ErrSemesterNotFound = errors.New("semester not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrNotSheetOwner    = errors.New("course does not belong to one of your sheets")

	// ErrLastCourseLocked guards the build-up invariant: a semester on a
	// zeros-mode sheet always keeps at least one course row.
	ErrLastCourseLocked = errors.New("cannot delete the last course of a semester on a build-up sheet")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrOwnerNotFound) ||
		errors.Is(err, ErrSheetNotFound) ||
		errors.Is(err, ErrSemesterNotFound) ||
		errors.Is(err, ErrCourseNotFound)
}

// IsUnauthorized checks if error represents an "unauthorized" condition
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden checks if error represents a "forbidden" condition
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotSheetOwner) ||
		errors.Is(err, ErrLastCourseLocked)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrMissingIdentity) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}
