package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidUserID is reported when the {id} path segment is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")
)

// Machine-readable codes of [models.ErrorResponse].
const (
	codeBadRequest         = "bad_request"
	codeInvalidCredentials = "invalid_credentials"
	codeValidationFailed   = "validation_failed"
	codeUnauthorized       = "unauthorized"
	codeForbidden          = "forbidden"
	codeNotFound           = "not_found"
	codeConflict           = "conflict"
	codeTooManyRequests    = "too_many_requests"
	codeInternal           = "internal_error"
)
