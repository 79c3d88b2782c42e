package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/zephyr-centrum/internal/adapter"
	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeAPI struct {
	session string

	loginFn    func(username, password string) (models.User, error)
	registerFn func(models.RegisterRequest) (models.User, error)
	logoutErr  error
	checkFn    func() (models.User, error)
	listFn     func() ([]models.User, error)
	updateFn   func(id int64, fields map[string]any) (models.User, error)
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (models.User, error) {
	f.session = "issued"
	return f.loginFn(username, password)
}

func (f *fakeAPI) Register(_ context.Context, request models.RegisterRequest) (models.User, error) {
	f.session = "issued"
	return f.registerFn(request)
}

func (f *fakeAPI) Logout(context.Context) error {
	f.session = ""
	return f.logoutErr
}

func (f *fakeAPI) CheckAuth(context.Context) (models.User, error) { return f.checkFn() }

func (f *fakeAPI) ListUsers(context.Context) ([]models.User, error) { return f.listFn() }

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, fields map[string]any) (models.User, error) {
	return f.updateFn(id, fields)
}

func (f *fakeAPI) Session() string        { return f.session }
func (f *fakeAPI) SetSession(token string) { f.session = token }

func newTestCommandLine(t *testing.T, api *fakeAPI) (*commandLine, *bytes.Buffer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", sessionFileName)
	out := &bytes.Buffer{}
	return &commandLine{
		api:      api,
		sessions: newSessionFile(path),
		build:    models.NewAppBuildInfo("1.2.3", "", ""),
		out:      out,
	}, out, path
}

// ── commands ──────────────────────────────────────────────────────────────────

func TestRun_NoArgs(t *testing.T) {
	cli, _, _ := newTestCommandLine(t, &fakeAPI{})
	assert.ErrorIs(t, cli.run(context.Background(), nil), errUsage)
}

func TestRun_UnknownCommand(t *testing.T) {
	cli, _, _ := newTestCommandLine(t, &fakeAPI{})
	assert.ErrorIs(t, cli.run(context.Background(), []string{"dance"}), errUnknownCommand)
}

func TestRun_LoginSavesSession(t *testing.T) {
	api := &fakeAPI{loginFn: func(username, password string) (models.User, error) {
		assert.Equal(t, "alice", username)
		assert.Equal(t, "secret", password)
		return models.User{Username: "alice", Role: models.RoleUser}, nil
	}}
	cli, out, path := newTestCommandLine(t, api)

	require.NoError(t, cli.run(context.Background(), []string{"login", "-u", "alice", "-p", "secret"}))
	assert.Contains(t, out.String(), "Logged in as alice (USER)")

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "issued", string(saved))
}

func TestRun_RestoresSavedSession(t *testing.T) {
	api := &fakeAPI{checkFn: func() (models.User, error) {
		return models.User{UserID: 1, Username: "alice"}, nil
	}}
	cli, out, path := newTestCommandLine(t, api)
	require.NoError(t, cli.sessions.Save("saved-token"))

	require.NoError(t, cli.run(context.Background(), []string{"whoami"}))
	assert.Equal(t, "saved-token", api.session)
	assert.Contains(t, out.String(), `"username": "alice"`)
	assert.FileExists(t, path)
}

func TestRun_LogoutClearsSessionEvenOnError(t *testing.T) {
	api := &fakeAPI{logoutErr: adapter.ErrInternalServerError}
	cli, _, path := newTestCommandLine(t, api)
	require.NoError(t, cli.sessions.Save("saved-token"))

	err := cli.run(context.Background(), []string{"logout"})
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.NoFileExists(t, path)
}

func TestRun_Register(t *testing.T) {
	api := &fakeAPI{registerFn: func(r models.RegisterRequest) (models.User, error) {
		assert.Equal(t, models.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "pw"}, r)
		return models.User{UserID: 3, Username: "bob"}, nil
	}}
	cli, out, _ := newTestCommandLine(t, api)

	require.NoError(t, cli.run(context.Background(), []string{"register", "-u", "bob", "-e", "bob@example.com", "-p", "pw"}))
	assert.Contains(t, out.String(), "Registered bob with id 3")
}

func TestRun_Update(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "fields", args: []string{"update", "7", "email=new@example.com", "role=ADMIN"}},
		{name: "missing fields", args: []string{"update", "7"}, wantErr: true},
		{name: "bad id", args: []string{"update", "x", "role=ADMIN"}, wantErr: true},
		{name: "bad pair", args: []string{"update", "7", "role"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{updateFn: func(id int64, fields map[string]any) (models.User, error) {
				assert.Equal(t, int64(7), id)
				assert.Equal(t, map[string]any{"email": "new@example.com", "role": "ADMIN"}, fields)
				return models.User{UserID: id}, nil
			}}
			cli, _, _ := newTestCommandLine(t, api)

			err := cli.run(context.Background(), tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRun_Version(t *testing.T) {
	cli, out, _ := newTestCommandLine(t, &fakeAPI{})
	require.NoError(t, cli.run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "Build version: 1.2.3")
	assert.Contains(t, out.String(), "Build date: N/A")
}

// ── describeError ─────────────────────────────────────────────────────────────

func TestDescribeError(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, "boom", describeError(plain))

	withFields := fmt.Errorf("register: %w", &adapter.APIError{
		StatusCode: 422,
		Response: models.ErrorResponse{
			Message: "validation failed",
			Fields:  []models.FieldError{{Field: "email", Code: "invalid", Message: "must be a valid email"}},
		},
	})
	assert.Contains(t, describeError(withFields), "\n  email: must be a valid email")
}
