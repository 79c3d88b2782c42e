package token

import "errors"

var (
	// ErrVerification is returned by Decode for a malformed token, a bad
	// signature or a signing algorithm other than RS256.
	ErrVerification = errors.New("token verification failed")

	// ErrInvalidKey is returned when PEM key material cannot be parsed.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrKeyMismatch is returned when the public key does not belong to the
	// private key.
	ErrKeyMismatch = errors.New("public key does not match private key")
)
