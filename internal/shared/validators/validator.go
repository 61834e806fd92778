package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// NewJSON creates a validator that reports field names by their json tag,
// so errors on wire types read like the payload ("lti_user_id" instead of "UserID").
func NewJSON() *Validate {
	return newWithTagName("json")
}

// NewMapstructure reports field names by their mapstructure tag, matching config keys.
func NewMapstructure() *Validate {
	return newWithTagName("mapstructure")
}

func newWithTagName(tag string) *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldNames returns the failing field names of a validation error, in order.
func FieldNames(err error) []string {
	ve, ok := err.(ValidationErrors)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ve))
	for _, e := range ve {
		names = append(names, e.Field())
	}
	return names
}
