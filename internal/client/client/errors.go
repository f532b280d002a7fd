package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
)

// APIError is a non-2xx response. Err is the mapped sentinel, nil for
// statuses without one.
type APIError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = "no detail"
	}
	if e.Err != nil {
		return fmt.Sprintf("%v (status %d): %s", e.Err, e.StatusCode, msg)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, msg)
}

func (e *APIError) Unwrap() error { return e.Err }

// Detail returns the server-provided message carried by err, if any.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
