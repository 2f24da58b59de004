package core

import (
	"errors"
	"fmt"
)

// ErrEmptyUsername is returned before any request when no username is given
var ErrEmptyUsername = errors.New("username must not be empty")

// StatusError indicates the API answered with a status other than 200
type StatusError struct {
	Username   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("listing repositories for %s: unexpected status %d", e.Username, e.StatusCode)
}

// TransportError wraps failures where no HTTP response was received
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError indicates a 200 response whose body is not a JSON array
type ParseError struct {
	Username string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing repositories for %s: %v", e.Username, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
