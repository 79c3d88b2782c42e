package service

import (
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/zephyr-centrum/internal/mock"
	"github.com/MKhiriev/zephyr-centrum/internal/token"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testKeysOnce sync.Once
	testKeys     *token.KeyPair
	testKeysErr  error
)

func testCodec(t *testing.T) *token.Codec {
	t.Helper()
	testKeysOnce.Do(func() {
		testKeys, testKeysErr = token.GenerateKeyPair(2048)
	})
	require.NoError(t, testKeysErr)
	return token.NewCodec(testKeys)
}

// testClock is a settable time source shared with the service under test.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type authFixture struct {
	repo   *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
	codec  *token.Codec
	clock  *testClock
	svc    AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		repo:   mock.NewMockUserRepository(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
		codec:  testCodec(t),
		clock:  &testClock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.svc = NewAuthService(
		f.repo,
		f.hasher,
		f.codec,
		validators.NewUserUpdateValidator(f.repo),
		testAuthConfig(),
		testLogger(),
		WithAuthClock(f.clock.Now),
	)
	return f
}
