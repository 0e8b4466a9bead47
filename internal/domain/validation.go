package domain

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their JSON names so editor dialogs can key
	// problems directly to their inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs tag-based validation and converts the result
// into a map of JSON field name to a short human-readable message,
// suitable for rendering next to editor fields.
func validateStruct(v any) map[string]string {
	problems := make(map[string]string)
	err := validate.Struct(v)
	if err == nil {
		return problems
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		problems["general"] = err.Error()
		return problems
	}
	for _, fe := range fieldErrs {
		problems[fieldKey(fe)] = messageFor(fe)
	}
	return problems
}

// fieldKey strips the root struct from the namespace, leaving paths
// like "line_items[0].description".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.IndexByte(ns, '.'); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
