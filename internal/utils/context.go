// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the authenticated user in a context,
// writing JSON responses, HTTP client initialization and identifier
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/zephyr-centrum/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the session user is stored.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user as the authenticated identity.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext retrieves the authenticated user. ok is false for
// anonymous requests.
//
// Example usage:
//
//	user, ok := utils.UserFromContext(r.Context())
//	if !ok {
//	    // anonymous request
//	}
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
