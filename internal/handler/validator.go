package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PetCalendar_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("food", validateFood)
	_ = v.RegisterValidation("date", validateLayout(domain.DateLayout))
	_ = v.RegisterValidation("clock", validateLayout(domain.TimeLayout))
	_ = v.RegisterValidation("monthkey", validateLayout(domain.MonthKeyLayout))

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "food":
			errs[field] = "Must be one of basic, good, premium, special"
		case "date":
			errs[field] = "Must be a date in YYYY-MM-DD format"
		case "clock":
			errs[field] = "Must be a time in HH:MM format"
		case "monthkey":
			errs[field] = "Must be a month in YYYY-MM format"
		case "hexcolor":
			errs[field] = "Must be a hex colour"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateFood(fl validator.FieldLevel) bool {
	food := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if food == "" {
		return true
	}
	return domain.FoodTier(strings.ToLower(food)).Valid()
}

// validateLayout accepts strings that time.Parse reads back unchanged.
func validateLayout(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		parsed, err := time.Parse(layout, value)
		return err == nil && parsed.Format(layout) == value
	}
}
