package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload signed into every session token.
//
// It embeds [jwt.RegisteredClaims] for the standard iss/sub/iat/exp set and
// adds the role scope and the numeric user identifier. Claims are immutable
// once signed; a token is invalidated only by expiry.
type Claims struct {
	jwt.RegisteredClaims

	// Scope is the authority string, "ROLE_" followed by the role name.
	Scope string `json:"scope"`

	// UserID mirrors [User.UserID] of the subject at issuance time.
	UserID int64 `json:"userId"`
}

// Token is a signed session token together with the data it was issued for.
type Token struct {
	// SignedString is the compact JWS serialization (header.payload.signature).
	SignedString string `json:"-"`

	// ExpiresAt is the moment after which the token no longer validates.
	ExpiresAt time.Time `json:"expires_at"`

	// User is the account the token was issued to.
	User User `json:"user"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// MaxAge returns the remaining token lifetime in whole seconds relative to now,
// clamped at zero.
func (t Token) MaxAge(now time.Time) int {
	seconds := int(t.ExpiresAt.Sub(now).Round(time.Second) / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}
