package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/crypto"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/mock"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/internal/token"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// sessionFlow wires the real auth service, codec and hasher behind a mocked
// repository.
type sessionFlow struct {
	handler *Handler
	codec   *token.Codec
	repo    *mock.MockUserRepository
	user    models.User
}

func newSessionFlow(t *testing.T) *sessionFlow {
	t.Helper()

	keys, err := token.GenerateKeyPair(2048)
	require.NoError(t, err)
	codec := token.NewCodec(keys)

	hasher := crypto.NewBcryptHasher(4)
	hash, err := hasher.Hash("Str0ng!Pass")
	require.NoError(t, err)

	repo := mock.NewMockUserRepository(gomock.NewController(t))
	user := models.User{UserID: 7, Username: "alice", Email: "alice@example.com", Role: models.RoleUser, PasswordHash: hash}

	repo.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, username string) (models.User, error) {
			if username == user.Username {
				return user, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		}).AnyTimes()

	authCfg := config.Auth{TokenIssuer: "self", TokenDuration: time.Hour}
	auth := service.NewAuthService(repo, hasher, codec, validators.NewUserUpdateValidator(repo), authCfg, logger.Nop())

	svcs := &service.Services{
		AuthService:    auth,
		AppInfoService: &fakeAppInfoService{},
	}

	return &sessionFlow{
		handler: NewHandler(svcs, allowAll{}, config.StructuredConfig{}, logger.Nop()),
		codec:   codec,
		repo:    repo,
		user:    user,
	}
}

func TestSessionFlow_LoginIssuesDecodableCookie(t *testing.T) {
	f := newSessionFlow(t)

	before := time.Now()
	rec := serve(f.handler, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"Str0ng!Pass"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.InDelta(t, 3600, cookie.MaxAge, 1)

	claims, err := f.codec.Decode(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "self", claims.Issuer)
	assert.Equal(t, "ROLE_USER", claims.Scope)
	assert.Equal(t, int64(7), claims.UserID)
	assert.WithinDuration(t, before.Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestSessionFlow_WrongPassword(t *testing.T) {
	f := newSessionFlow(t)

	for _, body := range []string{
		`{"username":"alice","password":"wrong-password"}`,
		`{"username":"mallory","password":"Str0ng!Pass"}`,
	} {
		rec := serve(f.handler, http.MethodPost, "/api/v1/auth/login", body, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, findCookie(rec, SessionCookieName))
		assert.Equal(t, "invalid_credentials", decodeError(t, rec.Body.Bytes()).Error)
	}
}

func TestSessionFlow_CookieAuthenticatesLaterRequests(t *testing.T) {
	f := newSessionFlow(t)

	login := serve(f.handler, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"Str0ng!Pass"}`, "")
	require.Equal(t, http.StatusOK, login.Code)
	cookie := findCookie(login, SessionCookieName)
	require.NotNil(t, cookie)

	rec := serve(f.handler, http.MethodGet, "/api/v1/auth/check-auth", "", cookie.Value)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)

	rec = serve(f.handler, http.MethodGet, "/api/v1/auth/check-auth", "", cookie.Value+"x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
