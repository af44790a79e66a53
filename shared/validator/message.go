package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "is required",
		"gt":        "must be greater than {param}",
		"gte":       "must be greater than or equal to {param}",
		"lte":       "must be less than or equal to {param}",
		"oneof":     "must be one of {param}",
		"max":       "must be less than or equal to {param}",
		"min":       "must be greater than or equal to {param}",
		"email":     "must be a valid email address",
		"unique":    "must not contain duplicates",
		"url":       "must be a valid url",
		"day":       "must be a date formatted as YYYY-MM-DD",
		"wallclock": "must be a time formatted as HH:MM",
	}
)

// fieldPath drops the root struct name so nested fields read as customerInfo.email.
func fieldPath(valErr val.FieldError) string {
	ns := valErr.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}

	if valErr.Field() != "" {
		return valErr.Field()
	}

	return ns
}

func message(err error) (string, string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := fieldPath(valErr)

			reason := messages[valErr.Tag()]
			if reason != "" {
				return field, strings.ReplaceAll(reason, "{param}", valErr.Param())
			}
		}

		first := valErrors[0]

		return fieldPath(first), "failed on " + first.Tag()
	}

	return "", err.Error()
}
