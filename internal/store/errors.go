package store

import (
	"errors"
)

// ErrorKind classifies operation failures so callers can map them onto their
// own surface (HTTP handlers map them to status codes).
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

// OpError is the structured failure result of a store operation: a
// caller-displayable message plus the individual error strings that produced
// it. Every operation either succeeds or returns one of these; nothing in the
// store is fatal.
type OpError struct {
	Kind    ErrorKind
	Message string
	Errors  []string
}

func (e *OpError) Error() string { return e.Message }

// AsOpError unwraps err into an *OpError if it is one.
func AsOpError(err error) (*OpError, bool) {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr, true
	}
	return nil, false
}

func validationFailed(errs []string) *OpError {
	return &OpError{Kind: KindValidation, Message: "Validation failed", Errors: errs}
}

func notFound(message string, errs ...string) *OpError {
	return &OpError{Kind: KindNotFound, Message: message, Errors: errs}
}

func conflict(message string, errs ...string) *OpError {
	return &OpError{Kind: KindConflict, Message: message, Errors: errs}
}

func internalFailure(message string) *OpError {
	return &OpError{Kind: KindInternal, Message: message}
}
