// Package form turns user input into request bodies. Each form is a typed
// record carrying its rules as validate tags; Validate reports every
// failing field at once.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// ValidationError maps each failing field to the rule it broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "invalid input (" + strings.Join(parts, ", ") + ")"
}

func (e *ValidationError) add(field, rule string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, seen := e.Fields[field]; !seen {
		e.Fields[field] = rule
	}
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// run the struct rules and collect the failures into a ValidationError
func check(v any) *ValidationError {
	verr := &ValidationError{}
	err := validate.Struct(v)
	if err == nil {
		return verr
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add("form", err.Error())
		return verr
	}
	for _, fieldErr := range fieldErrs {
		verr.add(fieldErr.Field(), fieldErr.Tag())
	}
	return verr
}
