package token

import (
	"fmt"

	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/golang-jwt/jwt/v5"
)

var signingMethod = jwt.SigningMethodRS256

// Codec encodes claims into signed tokens and decodes them back.
type Codec struct {
	keys *KeyPair
}

// NewCodec returns a Codec bound to keys.
func NewCodec(keys *KeyPair) *Codec {
	return &Codec{keys: keys}
}

// Encode signs claims with the private key.
func (c *Codec) Encode(claims models.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(c.keys.Private)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return signed, nil
}

// Decode verifies the signature of tokenString and returns its claims.
// Time-based claims are not checked.
func (c *Codec) Decode(tokenString string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) {
			return c.keys.Public, nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrVerification, err)
	}

	return claims, nil
}
