// Package forms holds the declarative validation schemas for submitted form
// data. Schemas are pure: they coerce and check raw field values and report
// per-field violation messages, but never touch the store.
//
// Unrecognized form keys are ignored; callers copy only the recognized fields
// into a schema struct.
package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the form field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldErrors maps a form field name to its violation messages, in the order
// the rules were checked.
type FieldErrors map[string][]string

func violations(err error) validator.ValidationErrors {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
