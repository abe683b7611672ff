package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var messages = map[string]string{
	"required":    "{field} is required",
	"max":         "{field} must be at most {param} characters",
	"min":         "{field} must be at least {param} characters",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"email":       "{field} must be a valid email address",
	"url":         "{field} must be a valid URL",
	"mimetypes":   "{field} must be an allowed image type",
	"maxfilesize": "{field} must not exceed {param} MB",
	"empty":       "{field} must be empty",
}

// fieldName reports request fields under the name the client sent: the form
// key for multipart uploads, otherwise the JSON key.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			continue
		}

		if name != "" {
			return name
		}
	}

	return field.Name
}

// message renders every failed rule, in field order.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	rendered := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			rendered = append(rendered, valErr.Error())

			continue
		}

		rendered = append(rendered, strings.NewReplacer(
			"{field}", valErr.Field(),
			"{param}", valErr.Param(),
		).Replace(template))
	}

	return strings.Join(rendered, messageSeparator)
}
