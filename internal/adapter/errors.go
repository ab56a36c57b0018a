package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Transport-level failures. They are always distinguishable from each other
// and from an HTTP-level [*APIError].
var (
	// ErrTimeout is returned when a call exceeds its deadline.
	ErrTimeout = errors.New("Request timeout - please check your connection")
	// ErrAborted is returned when the caller's context is cancelled.
	ErrAborted = errors.New("request aborted")
	// ErrNetwork is returned when the request could not be sent or the
	// response could not be read.
	ErrNetwork = errors.New("network error")
	// ErrDecode is returned when a 2xx JSON body does not parse.
	ErrDecode = errors.New("invalid JSON in response")
	// ErrSessionExpired is returned on HTTP 401 after the session has been
	// invalidated.
	ErrSessionExpired = errors.New("Session expired")
)

// Status sentinels an [*APIError] unwraps to.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrServer       = errors.New("server error")
)

// APIError is a non-2xx response of the Sterling API. Message is the
// human-readable text extracted from the response body, or the generic
// "API Error: <status> <statusText>".
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns Message, the text shown to the user.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps the status code to a package sentinel so callers can use
// errors.Is without inspecting codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrServer
	default:
		return nil
	}
}

// Retryable reports whether repeating the call may succeed: server errors,
// 408 and 429 are transient, other 4xx are not.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError ||
		e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode == http.StatusTooManyRequests
}

// IsRetryable reports whether a read that failed with err should be
// attempted again. An expired session and client-side API errors are final;
// everything else (timeouts, network failures, 5xx) is transient.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrAborted) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}

func genericMessage(statusCode int) string {
	return fmt.Sprintf("API Error: %d %s", statusCode, http.StatusText(statusCode))
}

// UserMessage returns the text to show for err: the server-supplied message
// of an [*APIError], the text of a transport sentinel, or err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	for _, sentinel := range []error{ErrSessionExpired, ErrTimeout, ErrAborted, ErrNetwork, ErrDecode} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
