package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the validator used for client-side request checks,
// with the custom notblank rule (required rejects missing values but not
// whitespace-only ones).
func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tag names.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// formatValidationError turns validator output into readable messages.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "notblank":
			msgs = append(msgs, fmt.Sprintf("%s must not be blank", field))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
