package models

import (
	"strings"
	"time"
)

// Role is the access level granted to an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Roles lists every role accepted by the application in declaration order.
var Roles = []Role{RoleUser, RoleAdmin}

// ParseRole resolves s to a known Role ignoring case and surrounding spaces.
func ParseRole(s string) (Role, bool) {
	candidate := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range Roles {
		if r == candidate {
			return r, true
		}
	}
	return "", false
}

// Scope returns the authority string carried in the token "scope" claim.
func (r Role) Scope() string {
	return "ROLE_" + string(r)
}

// User represents an account entity used for authentication and authorization.
// PasswordHash must never leave trusted boundaries and is excluded from JSON.
type User struct {
	// UserID is the database-assigned identifier.
	UserID int64 `json:"id"`

	// Username is unique across all accounts and is the token subject.
	Username string `json:"username"`

	// Email is unique across all accounts.
	Email string `json:"email"`

	// Role defaults to RoleUser on registration.
	Role Role `json:"role"`

	PasswordHash string `json:"-"`

	// CreatedAt is set by the database on insert.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds role r.
func (u User) HasRole(r Role) bool {
	return u.Role == r
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the self-service registration body.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest is the administrative account creation body.
// Role is optional and falls back to RoleUser.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty"`
}
