package crypto

import "errors"

var (
	ErrUnsupportedHasher = errors.New("unsupported password hasher")
	ErrPasswordTooLong   = errors.New("password exceeds 72 bytes")
)
