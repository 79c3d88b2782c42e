package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/ratelimit"
	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// fakeAuthService implements service.AuthService. Each method field can be
// overridden per test case; an unset field fails loudly.
type fakeAuthService struct {
	authenticateFn  func(ctx context.Context, username, password string) (models.Token, error)
	validateTokenFn func(ctx context.Context, token string) (models.User, error)
	registerFn      func(ctx context.Context, request models.RegisterRequest) (models.Token, error)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, username, password string) (models.Token, error) {
	return f.authenticateFn(ctx, username, password)
}

func (f *fakeAuthService) ValidateToken(ctx context.Context, token string) (models.User, error) {
	if f.validateTokenFn == nil {
		return models.User{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.validateTokenFn(ctx, token)
}

func (f *fakeAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	return f.registerFn(ctx, request)
}

// fakeUserService implements service.UserService.
type fakeUserService struct {
	listFn   func(ctx context.Context) ([]models.User, error)
	getFn    func(ctx context.Context, userID int64) (models.User, error)
	createFn func(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	updateFn func(ctx context.Context, userID int64, fields map[string]any) (models.User, error)
	deleteFn func(ctx context.Context, userID int64) error
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listFn(ctx)
}

func (f *fakeUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return f.getFn(ctx, userID)
}

func (f *fakeUserService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	return f.createFn(ctx, request)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, userID int64, fields map[string]any) (models.User, error) {
	return f.updateFn(ctx, userID, fields)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, userID int64) error {
	return f.deleteFn(ctx, userID)
}

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppInfo(context.Context) models.AppBuildInfo {
	return f.info
}

// allowAll admits every request.
type allowAll struct{}

func (allowAll) TryConsume(int) ratelimit.Probe {
	return ratelimit.Probe{Allowed: true}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var (
	aliceUser = models.User{UserID: 1, Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
	adminUser = models.User{UserID: 2, Username: "root", Email: "root@example.com", Role: models.RoleAdmin}
)

const (
	aliceToken = "alice.session.token"
	adminToken = "admin.session.token"
)

// sessionAuth resolves the two fixture tokens and rejects everything else.
func sessionAuth() *fakeAuthService {
	return &fakeAuthService{
		validateTokenFn: func(_ context.Context, token string) (models.User, error) {
			switch token {
			case aliceToken:
				return aliceUser, nil
			case adminToken:
				return adminUser, nil
			}
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

func issuedToken(user models.User) models.Token {
	return models.Token{
		SignedString: "issued." + user.Username + ".token",
		ExpiresAt:    time.Now().Add(time.Hour),
		User:         user,
	}
}

func newTestHandler(auth service.AuthService, users service.UserService, gate ratelimit.Limiter) *Handler {
	if gate == nil {
		gate = allowAll{}
	}
	svcs := &service.Services{
		AuthService:    auth,
		UserService:    users,
		AppInfoService: &fakeAppInfoService{info: models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123")},
	}
	return NewHandler(svcs, gate, config.StructuredConfig{}, logger.Nop())
}

// serve runs a request through the full router.
func serve(h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
