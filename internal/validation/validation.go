package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidDate  = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidPhone = errors.New("invalid phone number")
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phoneRe = regexp.MustCompile(`^(\+373\d{8}|0\d{8})$`)
)

// ValidDate checks the YYYY-MM-DD shape only; 2024-13-99 passes.
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// ValidPhone accepts +373 followed by 8 digits, or 0 followed by 8 digits.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// FieldError represents a validation error
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return ValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	return v
}

// ValidateStruct validates a struct and returns formatted errors
func ValidateStruct(s interface{}) []FieldError {
	var out []FieldError

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	case "isodate":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	case "phone":
		return fe.Field() + " must be +373XXXXXXXX or 0XXXXXXXX"
	default:
		return fe.Field() + " is invalid"
	}
}
