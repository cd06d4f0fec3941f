package errlocal

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ValidationSystem = "ValidationError"
	nonFieldKey      = "non_field_errors"
)

// ErrValidation reports malformed client input. Details are keyed by the
// offending field and hold a list of messages for it.
type ErrValidation struct {
	BaseError
}

func NewErrValidation(msg string, fields map[string][]string) LocalError {
	details := make(map[string]any, len(fields))
	for field, messages := range fields {
		details[field] = messages
	}

	return &ErrValidation{BaseError: newBase(msg, ValidationSystem, details)}
}

// NewErrValidationFrom converts decoding and validator errors into field
// level messages. Anything it cannot attribute to a field ends up under
// non_field_errors.
func NewErrValidationFrom(msg string, err error) LocalError {
	fields := map[string][]string{}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			name := toSnake(fe.Field())
			fields[name] = append(fields[name], describe(fe))
		}
	} else if err != nil {
		fields[nonFieldKey] = []string{err.Error()}
	}

	return NewErrValidation(msg, fields)
}

func (e *ErrValidation) Code() int {
	return http.StatusBadRequest
}

func (e *ErrValidation) ErrorKind() string {
	return ValidationSystem
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "uuid", "uuid4":
		return "Must be a valid UUID."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "alphanum":
		return "Only letters and digits are allowed."
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
