package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct ตรวจ struct ตาม validate tags
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// GetValidationErrors แปลง validator error เป็น field -> message
func GetValidationErrors(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		details["error"] = err.Error()
		return details
	}

	for _, fieldError := range validationErrors {
		field := strings.ToLower(fieldError.Field()[:1]) + fieldError.Field()[1:]
		switch fieldError.Tag() {
		case "required":
			details[field] = "This field is required"
		case "email":
			details[field] = "Must be a valid email address"
		case "min":
			details[field] = "Must be at least " + fieldError.Param() + " characters or items"
		case "max":
			details[field] = "Must be at most " + fieldError.Param() + " characters or items"
		case "oneof":
			details[field] = "Must be one of: " + fieldError.Param()
		default:
			details[field] = "Invalid value (" + fieldError.Tag() + ")"
		}
	}

	return details
}
