package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/zephyr-centrum/internal/config"
	"github.com/MKhiriev/zephyr-centrum/internal/crypto"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials with a PasswordHasher, signs claims with a
// TokenCodec and resolves token subjects through the UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    crypto.PasswordHasher
	codec     TokenCodec
	validator validators.FieldUpdateValidator

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// AuthOption configures an AuthService.
type AuthOption func(*authService)

// WithAuthClock replaces time.Now as the source of issuance and expiry times.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(a *authService) { a.now = now }
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	codec TokenCodec,
	validator validators.FieldUpdateValidator,
	cfg config.Auth,
	logger *logger.Logger,
	opts ...AuthOption,
) AuthService {
	a := &authService{
		userRepository: userRepository,
		hasher:         hasher,
		codec:          codec,
		validator:      validator,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *authService) Authenticate(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", username).Msg("login attempt for unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.issueToken(user)
}

// ValidateToken returns ErrTokenIsExpiredOrInvalid for a bad signature, a
// missing subject or expiry, an expired token and a subject that no longer
// exists. Only store failures are reported as other errors.
func (a *authService) ValidateToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := a.codec.Decode(token)
	if err != nil {
		log.Debug().Err(err).Msg("token verification failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		log.Debug().Msg("token without subject or expiry")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	if !a.now().Before(claims.ExpiresAt.Time) {
		log.Debug().Str("sub", claims.Subject).Time("exp", claims.ExpiresAt.Time).Msg("token expired")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByUsername(ctx, claims.Subject)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("sub", claims.Subject).Msg("token subject no longer exists")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("sub", claims.Subject).Msg("resolving token subject failed")
		return models.User{}, fmt.Errorf("resolving token subject failed: %w", err)
	}

	return user, nil
}

func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	errs := &validators.Errors{}
	if err := validators.ValidateStruct(request, errs); err != nil {
		return models.Token{}, err
	}
	if errs.HasErrors() {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}
	fields := map[string]any{
		validators.FieldUsername: request.Username,
		validators.FieldEmail:    request.Email,
		validators.FieldPassword: request.Password,
	}
	if err := a.validator.ValidateFields(ctx, fields, 0, errs); err != nil {
		log.Err(err).Msg("registration lookup failed")
		return models.Token{}, err
	}
	if errs.HasErrors() {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		Role:         models.RoleUser,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issueToken(user)
}

func (a *authService) issueToken(user models.User) (models.Token, error) {
	now := a.now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.tokenIssuer,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenDuration)),
		},
		Scope:  user.Role.Scope(),
		UserID: user.UserID,
	}

	signed, err := a.codec.Encode(claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{
		SignedString: signed,
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         user,
	}, nil
}
