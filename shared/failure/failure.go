package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a Failure independently of the HTTP code it maps to.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindProvider      Kind = "provider"
	KindNetwork       Kind = "network"
	KindConfiguration Kind = "configuration"
	KindUnauthorized  Kind = "unauthorized"
	KindNotFound      Kind = "not_found"
	KindInternal      Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Field: "page", Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Field: "limit", Message: "invalid limit parameter"}

// InvalidAmount and MissingBookingID are raised before any payment request leaves the process.
var InvalidAmount = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Field: "amount", Message: "amount must be greater than 0"}
var MissingBookingID = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Field: "bookingId", Message: "booking id is required"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Is matches failures by code, kind and field so sentinel values survive wrapping and copying.
func (e *Failure) Is(target error) bool {
	var t *Failure
	if !errors.As(target, &t) {
		return false
	}

	return e.Code == t.Code && e.Kind == t.Kind && e.Field == t.Field && e.Message == t.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validation returns a field-scoped validation failure.
func Validation(field, reason string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Field:   field,
		Message: fmt.Sprintf("%s: %s", field, reason),
	}
}

// Provider returns a failure carrying the message reported by the backend or payment provider verbatim.
// Backend 4xx codes are kept; anything else is reported as a bad gateway.
func Provider(code int, msg string) error {
	if code < http.StatusBadRequest || code >= http.StatusInternalServerError {
		code = http.StatusBadGateway
	}

	return &Failure{
		Code:    code,
		Kind:    KindProvider,
		Message: msg,
	}
}

// Network returns a failure for a request that could not complete.
func Network(err error) error {
	msg := "network error"
	if err != nil {
		msg = fmt.Sprintf("network error: %s", err.Error())
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindNetwork,
		Message: msg,
	}
}

// Configuration returns a failure for missing or invalid configuration.
func Configuration(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindConfiguration,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindInternal,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the kind of an error interface, KindInternal for foreign errors.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// GetField returns the offending field of a validation failure, if any.
func GetField(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Field
	}

	return ""
}
