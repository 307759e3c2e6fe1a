package errors

import (
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("mode", "must be 'zeros' or 'available'", "sometimes")

	if err.Field != "mode" {
		t.Errorf("Expected field to be 'mode', got '%s'", err.Field)
	}
	if err.Value != "sometimes" {
		t.Errorf("Expected value to be 'sometimes', got '%v'", err.Value)
	}

	expected := "validation error on field 'mode': must be 'zeros' or 'available'"
	if err.Error() != expected {
		t.Errorf("Expected error message to be '%s', got '%s'", expected, err.Error())
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Error() != "validation failed" {
		t.Errorf("Expected 'validation failed' for empty errors, got '%s'", errs.Error())
	}

	errs = append(errs, *NewValidationError("student_name", "is required", nil))
	expected := "validation failed: student_name is required"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for single error, got '%s'", expected, errs.Error())
	}

	errs = append(errs, *NewValidationError("years_of_study", "must be at least 1", 0))
	expected = "validation failed: 2 field errors"
	if errs.Error() != expected {
		t.Errorf("Expected '%s' for multiple errors, got '%s'", expected, errs.Error())
	}
}
