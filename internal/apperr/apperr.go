// Package apperr defines the typed error taxonomy used across the checkout
// flow. Callers classify failures by kind (a type check), never by matching
// message text.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind buckets an error for HTTP status mapping and retry policy (none of
// these kinds are retried anywhere in the flow).
type Kind int

const (
	// KindValidation is malformed or missing input. 400.
	KindValidation Kind = iota
	// KindNotFound is a missing order or resource. 404.
	KindNotFound
	// KindUpstream is a commerce-backend or carrier failure. 502.
	KindUpstream
	// KindPayment is a payment-gateway failure. 500.
	KindPayment
	// KindInternal is anything uncategorized. 500.
	KindInternal
)

// Error carries a kind, a stable machine-readable code for the JSON envelope,
// a human message, and the wrapped cause (if any).
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the kind to the status code of the failure taxonomy.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	case KindPayment, KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Validation returns a 400-class error with the given corrective message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: "validation_failed", Message: msg}
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// UnsupportedRegion reports a destination the shipping resolver cannot serve.
// It is validation-class (400) but carries its own code so the UI can show a
// region-specific message.
func UnsupportedRegion(msg string) *Error {
	return &Error{Kind: KindValidation, Code: "unsupported_region", Message: msg}
}

// NotFound reports a missing resource.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: msg}
}

// Upstream wraps a commerce-backend or carrier-API failure. op names the call
// that failed so logs can tell the two systems apart.
func Upstream(op string, err error) *Error {
	return &Error{Kind: KindUpstream, Code: "upstream_error", Message: op + " failed", Err: err}
}

// Payment wraps a payment-gateway failure.
func Payment(op string, err error) *Error {
	return &Error{Kind: KindPayment, Code: "payment_error", Message: op + " failed", Err: err}
}

// Internal wraps an uncategorized failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "internal_error", Message: "internal error", Err: err}
}

// From extracts the *Error in err's chain, or wraps err as KindInternal so
// every failure leaving a handler has a kind and a status.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
