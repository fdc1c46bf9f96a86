package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the stable machine-readable error classification exposed to callers.
type Kind string

const (
	KindValidation Kind = "VALIDATION_ERROR"
	KindExtraction Kind = "EXTRACTION_ERROR"
	KindCompletion Kind = "COMPLETION_ERROR"
	KindRetrieval  Kind = "RETRIEVAL_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindDatabase   Kind = "DATABASE_ERROR"
	KindInternal   Kind = "INTERNAL_ERROR"
)

// Error pairs a Kind with a human-readable message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf classifies any error. Unclassified errors report KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err (or anything it wraps) carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Retryable reports whether the error kind denotes a transient provider-side
// failure that the caller may retry, as opposed to a permanent client error.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindCompletion, KindRetrieval, KindDatabase:
		return true
	}
	return false
}
