// Package errors provides standardized error handling for the export pipeline.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping across the system.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid ErrorClass = iota
	// ErrorTransient represents temporary errors; the export pipeline never
	// retries, so these still abort the run, but callers can distinguish them
	ErrorTransient
	// ErrorFatal represents unrecoverable errors that terminate the run
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorTransient:
		return "transient"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// CLI errors
	ErrUsage = errors.New("usage: wrong number of arguments")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")

	// Graph query errors
	ErrQueryFailed   = errors.New("graph query failed")
	ErrDecodeFailed  = errors.New("query response decoding failed")
	ErrStoreClosed   = errors.New("graph store client closed")
	ErrQueryTimeout  = errors.New("graph query timeout")
	ErrUnauthorized  = errors.New("graph API rejected credentials")
	ErrEmptyResponse = errors.New("graph API returned empty response")

	// Output errors
	ErrUnsupportedFormat   = errors.New("unsupported output format")
	ErrSerializationFailed = errors.New("serialization failed")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// Wrap wraps an error with component and operation context using the
// standardized format "component: operation: context: error".
func Wrap(err error, component, operation, context string) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{
		Class:     Classify(err),
		Err:       err,
		Message:   fmt.Sprintf("%s: %s: %s: %v", component, operation, context, err),
		Component: component,
		Operation: operation,
	}
}

// WrapWithClass wraps an error with an explicit classification.
func WrapWithClass(err error, class ErrorClass, component, operation, context string) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   fmt.Sprintf("%s: %s: %s: %v", component, operation, context, err),
		Component: component,
		Operation: operation,
	}
}

// WrapInvalid wraps an error, forcing the invalid classification.
func WrapInvalid(err error, component, operation, context string) error {
	return WrapWithClass(err, ErrorInvalid, component, operation, context)
}

// Classify determines the error class for an error.
// Already-classified errors keep their class; known sentinels map to their
// natural class; everything else defaults to fatal, because the pipeline is a
// single-pass batch transform where any unexpected failure is terminal.
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorFatal
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class
	}

	switch {
	case errors.Is(err, ErrUsage),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrMissingConfig),
		errors.Is(err, ErrUnsupportedFormat):
		return ErrorInvalid
	case errors.Is(err, ErrQueryTimeout),
		errors.Is(err, ErrEmptyResponse):
		return ErrorTransient
	default:
		return ErrorFatal
	}
}

// IsInvalid checks if an error is due to invalid input or configuration
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	return Classify(err) == ErrorInvalid
}

// IsFatal checks if an error is unrecoverable
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return Classify(err) == ErrorFatal
}

// IsTransient checks if an error is transient
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	return Classify(err) == ErrorTransient
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers need only one errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
// Re-exported so callers need only one errors import.
func As(err error, target any) bool { return errors.As(err, target) }

// New returns an error that formats as the given text.
// Re-exported so callers need only one errors import.
func New(text string) error { return errors.New(text) }
