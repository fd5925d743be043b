package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrExecution       = errors.New("execution error")
	ErrMissingInput    = errors.New("no SVG provided")
	ErrInvalidMarkup   = errors.New("invalid SVG provided")
	ErrMalformedMarkup = errors.New("malformed SVG markup")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindExecution       ErrorKind = "execution"
	KindMissingInput    ErrorKind = "missing_input"
	KindInvalidMarkup   ErrorKind = "invalid_markup"
	KindMalformedMarkup ErrorKind = "malformed_markup"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// IsRequestError reports whether err was caused by the caller's input rather
// than by the tool itself. Transports map these to a 400-class response.
func IsRequestError(err error) bool {
	return IsKind(err, KindMissingInput) ||
		IsKind(err, KindInvalidMarkup) ||
		IsKind(err, KindMalformedMarkup)
}

// UserMessage returns a short, fixed message suitable for end users.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *OpError
	if !errors.As(err, &oe) {
		return "Unexpected error (see logs)"
	}

	switch oe.Kind {
	case KindMissingInput:
		return "No SVG provided"
	case KindInvalidMarkup:
		return "Invalid SVG provided"
	case KindMalformedMarkup:
		return "SVG could not be parsed"
	case KindNotFound:
		if oe.Path != "" {
			return "Not found: " + oe.Path
		}
		return "Not found"
	case KindInvalidConfig:
		return "Invalid config"
	default:
		return "Unexpected error (see logs)"
	}
}
