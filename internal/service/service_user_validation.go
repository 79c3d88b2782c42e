package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/zephyr-centrum/internal/validators"
	"github.com/MKhiriev/zephyr-centrum/models"
)

// userValidationService rejects account writes that break a field rule
// before they reach the wrapped UserService. Reads pass through.
type userValidationService struct {
	inner     UserService
	validator validators.FieldUpdateValidator
}

func NewUserValidationService(validator validators.FieldUpdateValidator) UserServiceWrapper {
	return &userValidationService{
		validator: validator,
	}
}

func (v *userValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *userValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *userValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *userValidationService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	errs := &validators.Errors{}
	if err := validators.ValidateStruct(request, errs); err != nil {
		return models.User{}, err
	}
	if errs.HasErrors() {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	fields := map[string]any{
		validators.FieldUsername: request.Username,
		validators.FieldEmail:    request.Email,
		validators.FieldPassword: request.Password,
	}
	if request.Role != "" {
		fields[validators.FieldRole] = request.Role
	}

	if err := v.check(ctx, fields, 0, errs); err != nil {
		return models.User{}, err
	}

	return v.inner.CreateUser(ctx, request)
}

func (v *userValidationService) UpdateUser(ctx context.Context, userID int64, fields map[string]any) (models.User, error) {
	if err := v.check(ctx, fields, userID, &validators.Errors{}); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateUser(ctx, userID, fields)
}

func (v *userValidationService) DeleteUser(ctx context.Context, userID int64) error {
	return v.inner.DeleteUser(ctx, userID)
}

func (v *userValidationService) check(ctx context.Context, fields map[string]any, currentRecordID int64, errs *validators.Errors) error {
	if err := v.validator.ValidateFields(ctx, fields, currentRecordID, errs); err != nil {
		return err
	}
	if errs.HasErrors() {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}
	return nil
}
