package model

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of domain failures a directive can produce.
// The dispatcher matches on the kind to pick the assistant-facing error
// type and to decide whether the failure is worth a telemetry report.
type ErrorKind int

const (
	// ErrInternal covers routing misses and anything otherwise unclassified.
	ErrInternal ErrorKind = iota
	// ErrAuth maps vendor 401/403 responses.
	ErrAuth
	// ErrNotFound maps vendor 400/404 responses.
	ErrNotFound
	// ErrInvalidDirective covers malformed directives and ungroupable
	// spaces; an expected condition, never reported to telemetry.
	ErrInvalidDirective
	// ErrPropertyUnavailable is raised when a fetched vendor state lacks a
	// field the capability table expects; also an expected condition.
	ErrPropertyUnavailable
)

// AssistantType returns the error type string the assistant expects for
// this kind.
func (k ErrorKind) AssistantType() string {
	switch k {
	case ErrAuth:
		return "INVALID_AUTHORIZATION_CREDENTIAL"
	case ErrNotFound:
		return "NO_SUCH_ENDPOINT"
	case ErrInvalidDirective:
		return "INVALID_DIRECTIVE"
	case ErrPropertyUnavailable:
		return "ENDPOINT_UNREACHABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// Reportable says whether failures of this kind go to the telemetry sink.
// Expected conditions (empty spaces, stale capability state) do not.
func (k ErrorKind) Reportable() bool {
	switch k {
	case ErrInvalidDirective, ErrPropertyUnavailable:
		return false
	default:
		return true
	}
}

// DirectiveError is the typed error returned by handlers and the vendor
// gateway. Message is safe to echo to the assistant.
type DirectiveError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DirectiveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DirectiveError) Unwrap() error { return e.Err }

// NewError builds a DirectiveError of the given kind.
func NewError(kind ErrorKind, message string) *DirectiveError {
	return &DirectiveError{Kind: kind, Message: message}
}

// WrapError attaches a kind and assistant-safe message to an underlying
// cause.
func WrapError(kind ErrorKind, message string, err error) *DirectiveError {
	return &DirectiveError{Kind: kind, Message: message, Err: err}
}

// KindOf classifies any error into an ErrorKind, defaulting to ErrInternal
// for errors that did not originate in the domain.
func KindOf(err error) ErrorKind {
	var de *DirectiveError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrInternal
}

// MessageOf extracts the assistant-safe message, falling back to a generic
// one for unclassified errors so transport details never leak outward.
func MessageOf(err error) string {
	var de *DirectiveError
	if errors.As(err, &de) {
		return de.Message
	}
	return "Unhandled Error"
}
