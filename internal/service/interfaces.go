package service

import (
	"context"

	"github.com/MKhiriev/zephyr-centrum/models"
)

// AuthService turns credentials into session tokens and session tokens back
// into users.
type AuthService interface {
	// Authenticate checks the credentials and issues a token. Unknown users
	// and wrong passwords both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.Token, error)

	// ValidateToken verifies the token, checks its expiry and resolves the
	// current state of its subject.
	ValidateToken(ctx context.Context, token string) (models.User, error)

	// Register creates an account with role USER and signs it in.
	Register(ctx context.Context, request models.RegisterRequest) (models.Token, error)
}

// UserService manages user accounts.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)

	// UpdateUser applies a partial update. Keys that are not user fields are
	// ignored.
	UpdateUser(ctx context.Context, userID int64, fields map[string]any) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// TokenCodec signs and verifies identity claims.
type TokenCodec interface {
	Encode(claims models.Claims) (string, error)
	Decode(token string) (models.Claims, error)
}
