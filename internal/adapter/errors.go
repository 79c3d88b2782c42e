package adapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/zephyr-centrum/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")

	ErrInvalidAddress = errors.New("invalid server address")
)

// APIError is a non-2xx answer of the server. It unwraps to the sentinel
// matching its status.
type APIError struct {
	StatusCode int
	Response   models.ErrorResponse

	// RetryAfter is the server's hint on 429 answers.
	RetryAfter time.Duration

	kind error
}

func (e *APIError) Error() string {
	msg := e.Response.Message
	if msg == "" {
		msg = e.Response.Error
	}
	if msg == "" {
		return fmt.Sprintf("%s (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (http %d): %s", e.kind, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// RetryAfter extracts the retry hint of a rate-limited call.
func RetryAfter(err error) (time.Duration, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && errors.Is(apiErr.kind, ErrRateLimited) {
		return apiErr.RetryAfter, true
	}
	return 0, false
}
