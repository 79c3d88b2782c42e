package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrValidationFailed wraps a *validators.Errors describing every
	// rejected field.
	ErrValidationFailed = errors.New("validation failed")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
