package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/zephyr-centrum/internal/store"
	"github.com/MKhiriev/zephyr-centrum/models"
)

// Field names understood by [UserUpdateValidator].
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 30
	passwordMinLength = 8
)

// reservedPrefix marks keys that are never treated as record data.
const reservedPrefix = "_"

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// UserUpdateValidator validates partial updates of user accounts.
type UserUpdateValidator struct {
	users UserLookup
	rules map[string]FieldRule
}

// NewUserUpdateValidator returns a validator with the username, email,
// password and role rules registered.
func NewUserUpdateValidator(users UserLookup) *UserUpdateValidator {
	v := &UserUpdateValidator{
		users: users,
		rules: make(map[string]FieldRule),
	}

	v.Register(FieldUsername, v.validateUsername)
	v.Register(FieldEmail, v.validateEmail)
	v.Register(FieldPassword, validatePassword)
	v.Register(FieldRole, validateRole)

	return v
}

// Register adds or replaces the rule for field. Reserved names are ignored.
func (v *UserUpdateValidator) Register(field string, rule FieldRule) {
	if strings.HasPrefix(field, reservedPrefix) {
		return
	}
	v.rules[field] = rule
}

func (v *UserUpdateValidator) SupportsField(name string) bool {
	_, ok := v.rules[name]
	return ok
}

func (v *UserUpdateValidator) ValidateFields(ctx context.Context, fields map[string]any, currentRecordID int64, errs *Errors) error {
	var lookupErr error

	for name, value := range fields {
		if strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		rule, ok := v.rules[name]
		if !ok {
			continue
		}
		if err := rule(ctx, name, value, currentRecordID, errs); err != nil {
			lookupErr = errors.Join(lookupErr, err)
		}
	}

	return lookupErr
}

// stringValue extracts a string from a decoded JSON value. nil counts as an
// empty string; any other type is rejected with CodeType.
func stringValue(field string, value any, errs *Errors) (string, bool) {
	switch s := value.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	default:
		errs.Reject(field, CodeType, fmt.Sprintf("%s must be a string", capitalize(field)))
		return "", false
	}
}

func (v *UserUpdateValidator) validateUsername(ctx context.Context, field string, value any, currentRecordID int64, errs *Errors) error {
	username, ok := stringValue(field, value, errs)
	if !ok {
		return nil
	}

	if strings.TrimSpace(username) == "" {
		errs.Reject(field, CodeRequired, "Username is required")
		return nil
	}

	if n := utf8.RuneCountInString(username); n < usernameMinLength || n > usernameMaxLength {
		errs.Reject(field, CodeLength,
			fmt.Sprintf("Username must be between %d and %d characters", usernameMinLength, usernameMaxLength))
		return nil
	}

	existing, err := v.users.FindUserByUsername(ctx, username)
	return checkUnique(field, "Username is already taken", existing, err, currentRecordID, errs)
}

func (v *UserUpdateValidator) validateEmail(ctx context.Context, field string, value any, currentRecordID int64, errs *Errors) error {
	email, ok := stringValue(field, value, errs)
	if !ok {
		return nil
	}

	if strings.TrimSpace(email) == "" {
		errs.Reject(field, CodeRequired, "Email is required")
		return nil
	}

	if !emailPattern.MatchString(email) {
		errs.Reject(field, CodeInvalid, "Invalid email format")
		return nil
	}

	existing, err := v.users.FindUserByEmail(ctx, email)
	return checkUnique(field, "Email is already taken", existing, err, currentRecordID, errs)
}

// checkUnique records a duplicate when a lookup found a record other than
// the one being updated.
func checkUnique(field, message string, existing models.User, err error, currentRecordID int64, errs *Errors) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLookupFailed, field, err)
	}
	if existing.UserID != currentRecordID {
		errs.Reject(field, CodeDuplicate, message)
	}
	return nil
}

func validatePassword(_ context.Context, field string, value any, _ int64, errs *Errors) error {
	password, ok := stringValue(field, value, errs)
	if !ok {
		return nil
	}

	if strings.TrimSpace(password) == "" {
		errs.Reject(field, CodeRequired, "Password is required")
		return nil
	}

	if utf8.RuneCountInString(password) < passwordMinLength {
		errs.Reject(field, CodeMinLength,
			fmt.Sprintf("Password must be at least %d characters long", passwordMinLength))
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasLetter || !hasDigit || !hasSpecial {
		errs.Reject(field, CodeComplexity, "Password must contain letters, numbers, and special characters")
	}

	return nil
}

func validateRole(_ context.Context, field string, value any, _ int64, errs *Errors) error {
	role, ok := stringValue(field, value, errs)
	if !ok {
		return nil
	}

	if strings.TrimSpace(role) == "" {
		errs.Reject(field, CodeRequired, "Role is required")
		return nil
	}

	if _, known := models.ParseRole(role); !known {
		errs.Reject(field, CodeInvalid, "Invalid role. Must be one of: "+validRoles())
	}
	return nil
}

func validRoles() string {
	names := make([]string, 0, len(models.Roles))
	for _, r := range models.Roles {
		names = append(names, string(r))
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
