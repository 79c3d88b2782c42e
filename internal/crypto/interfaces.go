package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidates against them. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns an encoded hash of password, salted per call.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash.
	// A malformed hash never matches.
	Verify(password, hash string) bool
}
