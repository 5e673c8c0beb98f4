package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

func GetValidator() *validator.Validate {
	return validate
}

// ProcessValidationErrors flattens validator field errors into a
// field -> message map for callers that surface them.
func ProcessValidationErrors(err error) map[string]string {
	errorResponse := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorResponse["error"] = err.Error()
		return errorResponse
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "required":
			errorResponse[fieldErr.Field()] = "this field is required"
		case "gt":
			errorResponse[fieldErr.Field()] = "must be greater than " + fieldErr.Param()
		case "gte":
			errorResponse[fieldErr.Field()] = "must be at least " + fieldErr.Param()
		case "min":
			errorResponse[fieldErr.Field()] = "needs at least " + fieldErr.Param() + " entries"
		default:
			errorResponse[fieldErr.Field()] = "invalid value"
		}
	}
	return errorResponse
}
