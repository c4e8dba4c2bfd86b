package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownCurrency indicates a currency code or ISO number missing from the registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrIncorrectRates indicates that the supplied rate table has no entry for the conversion target.
var ErrIncorrectRates = errors.New("incorrect rates")

// ErrConnectionFailure indicates the HTTP transport could not complete the call (including timeouts).
var ErrConnectionFailure = errors.New("connection failure")

// ErrEmptyResponse indicates the call completed but the body was empty or not a JSON object.
var ErrEmptyResponse = errors.New("empty response")

// ErrServerRejected indicates the gateway answered with a structured error envelope.
// Use errors.As with *ServerError to read code, message and HTTP status.
var ErrServerRejected = errors.New("server rejected request")

// ErrTokenExpired is the gateway's "access token expired" signal.
// It is consumed by the session layer and never returned to its callers.
var ErrTokenExpired = errors.New("access token expired")

// ErrInvalidSignature indicates a callback whose sign.hash does not match.
var ErrInvalidSignature = errors.New("invalid callback signature")

// ServerError is the structured error envelope returned by the gateway.
type ServerError struct {
	Code    string
	Message string
	Status  int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned error (%s) %s with %d status", e.Code, e.Message, e.Status)
}

// Is lets errors.Is(err, ErrServerRejected) match any *ServerError.
func (e *ServerError) Is(target error) bool {
	return target == ErrServerRejected
}
