// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the zephyr-centrum REST API.
//
// The primary abstraction is [APIClient], which hides the transport from
// command-line tooling. The shipped implementation ([NewHTTPAPIClient]) keeps
// the session cookie issued by the server and replays it on every request.
//
// Non-2xx answers are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/zephyr-centrum/models"
)

// APIClient defines communication with the zephyr-centrum server.
type APIClient interface {
	// Login authenticates and keeps the issued session.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Register creates an account and keeps the issued session.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Logout asks the server to clear the session cookie and forgets the
	// local session even if the request fails.
	Logout(ctx context.Context) error

	// CheckAuth returns the user behind the current session. An anonymous or
	// expired session yields ErrUnauthorized.
	CheckAuth(ctx context.Context) (models.User, error)

	// ListUsers returns every account. An empty result is not an error.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser sends a partial update. Requires an ADMIN session.
	UpdateUser(ctx context.Context, userID int64, fields map[string]any) (models.User, error)

	// Session returns the raw session token, or "" when signed out.
	Session() string

	// SetSession restores a previously saved session token.
	SetSession(token string)
}
