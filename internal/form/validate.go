package form

import (
	"fmt"

	validator "github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks required fields and email grammar, accumulating every
// violation in field-declaration order. An empty result means the submission
// is valid. Malformed input produces violations, never an error.
func Validate(s Submission, schema Schema) []string {
	var errs []string
	for _, field := range schema.Fields {
		value := s[field.Name]
		if field.Required && value == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field.errorLabel()))
		}
		if field.Kind == KindEmail && field.Required {
			if err := validate.Var(value, "email"); err != nil {
				errs = append(errs, "Valid email is required")
			}
		}
	}
	return errs
}
