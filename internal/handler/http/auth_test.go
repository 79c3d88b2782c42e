// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/zephyr-centrum/internal/service"
	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &fakeAuthService{
		authenticateFn: func(_ context.Context, username, password string) (models.Token, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "Str0ng!Pass", password)
			return issuedToken(aliceUser), nil
		},
	}
	h := newTestHandler(auth, nil, nil)

	rec := serve(h, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"Str0ng!Pass"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "issued.alice.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, "/", cookie.Path)
	assert.InDelta(t, 3600, cookie.MaxAge, 1)

	var body models.UserEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Data.User.Username)
	assert.NotContains(t, rec.Body.String(), "issued.alice.token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &fakeAuthService{
		authenticateFn: func(context.Context, string, string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(auth, nil, nil)

	rec := serve(h, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"wrong"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec, SessionCookieName))
	assert.Equal(t, "invalid_credentials", decodeError(t, rec.Body.Bytes()).Error)
}

func TestLogin_BadRequests(t *testing.T) {
	auth := &fakeAuthService{
		authenticateFn: func(context.Context, string, string) (models.Token, error) {
			t.Error("service must not be reached")
			return models.Token{}, nil
		},
	}
	h := newTestHandler(auth, nil, nil)

	tests := []struct {
		name       string
		body       string
		wantCode   string
		wantFields []string
	}{
		{name: "invalid json", body: `{"username":`, wantCode: "bad_request"},
		{name: "empty body", body: "", wantCode: "bad_request"},
		{name: "missing password", body: `{"username":"alice"}`, wantCode: "validation_failed", wantFields: []string{"password"}},
		{name: "missing both", body: `{}`, wantCode: "validation_failed", wantFields: []string{"password", "username"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodPost, "/api/v1/auth/login", tt.body, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec.Body.Bytes())
			assert.Equal(t, tt.wantCode, resp.Error)

			var fields []string
			for _, f := range resp.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestLogin_InternalError(t *testing.T) {
	auth := &fakeAuthService{
		authenticateFn: func(context.Context, string, string) (models.Token, error) {
			return models.Token{}, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery)
		},
	}
	h := newTestHandler(auth, nil, nil)

	rec := serve(h, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"x"}`, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Nil(t, findCookie(rec, SessionCookieName))
}

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	fieldErrs := &validators.Errors{}
	fieldErrs.Reject("password", validators.CodeMinLength, "Password must be at least 8 characters long")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCookie bool
	}{
		{name: "created", wantStatus: http.StatusCreated, wantCookie: true},
		{name: "duplicate username", err: store.ErrUsernameAlreadyExists, wantStatus: http.StatusConflict},
		{name: "duplicate email", err: store.ErrEmailAlreadyExists, wantStatus: http.StatusConflict},
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrValidationFailed, fieldErrs), wantStatus: http.StatusBadRequest},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuthService{
				registerFn: func(_ context.Context, request models.RegisterRequest) (models.Token, error) {
					assert.Equal(t, "bob", request.Username)
					if tt.err != nil {
						return models.Token{}, tt.err
					}
					return issuedToken(models.User{UserID: 3, Username: request.Username, Role: models.RoleUser}), nil
				},
			}
			h := newTestHandler(auth, nil, nil)

			rec := serve(h, http.MethodPost, "/api/v1/auth/register",
				`{"username":"bob","email":"bob@example.com","password":"Str0ng!Pass"}`, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCookie, findCookie(rec, SessionCookieName) != nil)
		})
	}
}

func TestRegister_ValidationCarriesFields(t *testing.T) {
	fieldErrs := &validators.Errors{}
	fieldErrs.Reject("username", validators.CodeLength, "Username must be between 3 and 30 characters")
	fieldErrs.Reject("password", validators.CodeMinLength, "Password must be at least 8 characters long")

	auth := &fakeAuthService{
		registerFn: func(context.Context, models.RegisterRequest) (models.Token, error) {
			return models.Token{}, fmt.Errorf("%w: %w", service.ErrValidationFailed, fieldErrs)
		},
	}
	h := newTestHandler(auth, nil, nil)

	rec := serve(h, http.MethodPost, "/api/v1/auth/register",
		`{"username":"ab","email":"ab@example.com","password":"short"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, "validation_failed", resp.Error)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "password", resp.Fields[0].Field)
	assert.Equal(t, "username", resp.Fields[1].Field)
}

// ── logout ───────────────────────────────────────────────────────────────────

func TestLogout_ClearsCookie(t *testing.T) {
	h := newTestHandler(sessionAuth(), nil, nil)

	rec := serve(h, http.MethodPost, "/api/v1/auth/logout", "", aliceToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	cookie := findCookie(rec, SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestLogout_Anonymous(t *testing.T) {
	h := newTestHandler(sessionAuth(), nil, nil)

	rec := serve(h, http.MethodPost, "/api/v1/auth/logout", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

// ── check-auth ───────────────────────────────────────────────────────────────

func TestCheckAuth(t *testing.T) {
	h := newTestHandler(sessionAuth(), nil, nil)

	t.Run("authenticated", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/api/v1/auth/check-auth", "", aliceToken)

		require.Equal(t, http.StatusOK, rec.Code)
		var body models.UserEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, aliceUser.UserID, body.Data.User.UserID)
	})

	t.Run("anonymous", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/api/v1/auth/check-auth", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/api/v1/auth/check-auth", "", "forged")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
	})
}
