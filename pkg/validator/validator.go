package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single client-facing validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DefaultMessages maps validation tags to messages
var DefaultMessages = map[string]string{
	"required": "Field is required",
	"min":      "Value is too short",
	"max":      "Value is too long",
}

// JSONTagName reports a struct field by its json name.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// UseJSONNames makes v report fields by their json names.
func UseJSONNames(v *validator.Validate) {
	v.RegisterTagNameFunc(JSONTagName)
}

// Translate flattens validator errors into FieldErrors using messages,
// falling back to DefaultMessages and then to the validator's own text.
// It returns nil when err holds no validation errors.
func Translate(err error, messages map[string]string) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		msg := messages[e.Tag()]
		if msg == "" {
			msg = DefaultMessages[e.Tag()]
		}
		if msg == "" {
			msg = e.Error()
		}
		out = append(out, FieldError{Field: e.Field(), Message: msg})
	}
	return out
}
