package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zephyr-centrum/internal/crypto"
	"github.com/MKhiriev/zephyr-centrum/internal/logger"
	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/MKhiriev/zephyr-centrum/models"
)

// userService applies account changes. Input is assumed to be validated;
// see userValidationService.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, userID)
}

func (s *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	role := models.RoleUser
	if request.Role != "" {
		parsed, ok := models.ParseRole(request.Role)
		if !ok {
			return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidationFailed, request.Role)
		}
		role = parsed
	}

	hash, err := s.hasher.Hash(request.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	return s.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		Role:         role,
		PasswordHash: hash,
	})
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, fields map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	changed := false
	if v, ok := fields[validators.FieldUsername].(string); ok {
		user.Username = v
		changed = true
	}
	if v, ok := fields[validators.FieldEmail].(string); ok {
		user.Email = v
		changed = true
	}
	if v, ok := fields[validators.FieldRole].(string); ok {
		role, known := models.ParseRole(v)
		if !known {
			return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidationFailed, v)
		}
		user.Role = role
		changed = true
	}
	if v, ok := fields[validators.FieldPassword].(string); ok {
		hash, err := s.hasher.Hash(v)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		user.PasswordHash = hash
		changed = true
	}

	if !changed {
		log.Debug().Int64("user_id", userID).Msg("update without user fields")
		return user, nil
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}
