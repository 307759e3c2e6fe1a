package validator

import (
	"reflect"
	"strings"

	"github.com/acadegrade/result-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator is the centralized request validator.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with the custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("population_mode", validatePopulationMode)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validatePopulationMode(fl validator.FieldLevel) bool {
	validModes := []models.PopulationMode{
		models.ModeZeros,
		models.ModeAvailable,
	}

	value := fl.Field().String()
	for _, validMode := range validModes {
		if string(validMode) == value {
			return true
		}
	}
	return false
}
