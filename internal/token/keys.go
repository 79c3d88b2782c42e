package token

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// KeyPair is the RSA key material used by [Codec].
type KeyPair struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

// LoadKeyPair parses PEM encoded keys. The public key may be PKIX, PKCS#1 or
// a certificate; the private key may be PKCS#1 or PKCS#8.
func LoadKeyPair(publicPEM, privatePEM []byte) (*KeyPair, error) {
	public, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidKey, err)
	}

	private, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %w", ErrInvalidKey, err)
	}

	if !private.PublicKey.Equal(public) {
		return nil, ErrKeyMismatch
	}

	return &KeyPair{Private: private, Public: public}, nil
}

// LoadKeyPairFromFiles reads both PEM files and delegates to LoadKeyPair.
func LoadKeyPairFromFiles(publicKeyPath, privateKeyPath string) (*KeyPair, error) {
	publicPEM, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("error reading public key: %w", err)
	}

	privatePEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("error reading private key: %w", err)
	}

	return LoadKeyPair(publicPEM, privatePEM)
}

// GenerateKeyPair creates a fresh RSA key pair of the given size.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	private, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("error generating rsa key: %w", err)
	}

	return &KeyPair{Private: private, Public: &private.PublicKey}, nil
}

// EncodePEM returns the public key as PKIX and the private key as PKCS#8,
// both PEM encoded.
func (k *KeyPair) EncodePEM() (publicPEM, privatePEM []byte, err error) {
	publicDER, err := x509.MarshalPKIXPublicKey(k.Public)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling public key: %w", err)
	}

	privateDER, err := x509.MarshalPKCS8PrivateKey(k.Private)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling private key: %w", err)
	}

	publicPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})
	privatePEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privateDER})

	return publicPEM, privatePEM, nil
}
