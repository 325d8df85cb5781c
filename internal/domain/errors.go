package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession = errors.New("no session")
)

// TransportError is a network-level failure raised before any HTTP
// response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError is a non-2xx HTTP response from the upstream. Message is
// extracted from the body's message/error fields when possible, with a
// fallback carrying the numeric status.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string { return e.Message }

// MalformedResponseError is a 2xx response whose body is non-empty but
// not valid JSON.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v. Response text: %s", e.Err, e.Body)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// AuthenticationError is a failed login: the backend rejected the
// credentials at the transport layer.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError is a login that succeeded over HTTP but whose
// returned role is not the privileged role. The session must never take
// effect in that case.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }
