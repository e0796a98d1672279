package errors

import (
	"errors"
	"fmt"
)

// Sentinels classifying why a request against the server failed.
// Callers branch on these with errors.Is; the wrapped error keeps the
// server's own message for display.
var (
	// ErrTimeout : the request deadline elapsed before a response arrived.
	ErrTimeout = errors.New("request timed out")

	// ErrConnection : the server could not be reached at all.
	ErrConnection = errors.New("server unreachable")

	// ErrUnauthorized : the server rejected the credential (401 or 403).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound : the addressed resource does not exist (404).
	ErrNotFound = errors.New("not found")

	// ErrServer : the server failed internally (5xx).
	ErrServer = errors.New("server error")
)

// HTTPError is a non-2xx response, classified under one of the
// sentinels above via Unwrap.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError classifies a non-2xx status code. message should hold
// the server's own explanation when one could be read from the body.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d", e.Code)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
}

func (e *HTTPError) Unwrap() error {
	switch {
	case e.Code == 401 || e.Code == 403:
		return ErrUnauthorized
	case e.Code == 404:
		return ErrNotFound
	case 500 <= e.Code:
		return ErrServer
	default:
		return nil
	}
}
