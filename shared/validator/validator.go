package validator

import (
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok || len(str) != len(layout) {
			return false
		}

		_, err := time.Parse(layout, str)

		return err == nil
	}
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("day", registerLayoutValidation(constant.DayFormat))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("wallclock", registerLayoutValidation(constant.WallTimeFormat))
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, a field-scoped validation failure is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		field, reason := message(err)

		return failure.Validation(field, reason) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		_, reason := message(err)

		return failure.BadRequestFromString(reason) //nolint:wrapcheck
	}

	return nil
}

// ValidateResponse validates decoded data of unknown shape: a struct, a pointer to one, or a slice of them.
// Anything else passes untouched.
func ValidateResponse(data any) error {
	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil
		}

		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		if err := validate.Struct(value.Interface()); err != nil {
			field, reason := message(err)

			return failure.Validation(field, reason) //nolint:wrapcheck
		}
	case reflect.Slice, reflect.Array:
		for idx := range value.Len() {
			if err := ValidateResponse(value.Index(idx).Interface()); err != nil {
				return err
			}
		}
	default:
	}

	return nil
}
