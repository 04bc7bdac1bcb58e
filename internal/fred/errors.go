package fred

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the module can surface. Validation kinds are
// detected before any upstream call; the remaining kinds require a round-trip
// to the FRED API.
type Kind string

const (
	KindMissingParameter          Kind = "MissingParameter"
	KindInvalidDateFormat         Kind = "InvalidDateFormat"
	KindInvalidDateRange          Kind = "InvalidDateRange"
	KindInvalidLimit              Kind = "InvalidLimit"
	KindUnknownOperation          Kind = "UnknownOperation"
	KindInvalidSeriesID           Kind = "InvalidSeriesId"
	KindInvalidParameter          Kind = "InvalidParameter"
	KindUpstreamUnavailable       Kind = "UpstreamUnavailable"
	KindMalformedUpstreamResponse Kind = "MalformedUpstreamResponse"
)

// Error carries a classification kind alongside the message and an optional
// wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NewError builds a classified error with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds a classified error around an underlying cause.
func WrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the classification from err. Unclassified errors report
// UpstreamUnavailable so no failure ever escapes without a kind attached.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUpstreamUnavailable
}

// MessageOf returns the human-readable message for err.
func MessageOf(err error) string {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Message
	}
	return err.Error()
}
