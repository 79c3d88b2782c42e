package token

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKeysOnce sync.Once
	testKeys     [2]*KeyPair
)

// fixtureKeys returns two distinct key pairs shared by all tests in the package.
func fixtureKeys(t *testing.T) (*KeyPair, *KeyPair) {
	t.Helper()
	testKeysOnce.Do(func() {
		for i := range testKeys {
			kp, err := GenerateKeyPair(2048)
			if err != nil {
				panic(err)
			}
			testKeys[i] = kp
		}
	})
	return testKeys[0], testKeys[1]
}

func TestLoadKeyPair_PKIXAndPKCS8(t *testing.T) {
	kp, _ := fixtureKeys(t)
	publicPEM, privatePEM, err := kp.EncodePEM()
	require.NoError(t, err)

	loaded, err := LoadKeyPair(publicPEM, privatePEM)
	require.NoError(t, err)
	assert.True(t, loaded.Public.Equal(kp.Public))
	assert.True(t, loaded.Private.Equal(kp.Private))
}

func TestLoadKeyPair_PKCS1(t *testing.T) {
	kp, _ := fixtureKeys(t)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PUBLIC KEY", Bytes: x509.MarshalPKCS1PublicKey(kp.Public)})
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(kp.Private)})

	loaded, err := LoadKeyPair(publicPEM, privatePEM)
	require.NoError(t, err)
	assert.True(t, loaded.Public.Equal(kp.Public))
}

func TestLoadKeyPair_Errors(t *testing.T) {
	kp, other := fixtureKeys(t)
	publicPEM, privatePEM, err := kp.EncodePEM()
	require.NoError(t, err)
	otherPublicPEM, _, err := other.EncodePEM()
	require.NoError(t, err)

	tests := []struct {
		name       string
		publicPEM  []byte
		privatePEM []byte
		wantErr    error
	}{
		{name: "garbage public key", publicPEM: []byte("not a key"), privatePEM: privatePEM, wantErr: ErrInvalidKey},
		{name: "garbage private key", publicPEM: publicPEM, privatePEM: []byte("not a key"), wantErr: ErrInvalidKey},
		{name: "mismatched pair", publicPEM: otherPublicPEM, privatePEM: privatePEM, wantErr: ErrKeyMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loaded, err := LoadKeyPair(tt.publicPEM, tt.privatePEM)
			assert.Nil(t, loaded)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadKeyPairFromFiles(t *testing.T) {
	kp, _ := fixtureKeys(t)
	publicPEM, privatePEM, err := kp.EncodePEM()
	require.NoError(t, err)

	dir := t.TempDir()
	publicPath := filepath.Join(dir, "public.pem")
	privatePath := filepath.Join(dir, "private.pem")
	require.NoError(t, os.WriteFile(publicPath, publicPEM, 0o600))
	require.NoError(t, os.WriteFile(privatePath, privatePEM, 0o600))

	loaded, err := LoadKeyPairFromFiles(publicPath, privatePath)
	require.NoError(t, err)
	assert.True(t, loaded.Public.Equal(kp.Public))

	_, err = LoadKeyPairFromFiles(filepath.Join(dir, "missing.pem"), privatePath)
	assert.Error(t, err)
}
