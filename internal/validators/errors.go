package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/zephyr-centrum/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrLookupFailed    = errors.New("uniqueness lookup failed")
)

// Codes recorded in [Errors].
const (
	CodeRequired   = "field.required"
	CodeLength     = "field.length"
	CodeMinLength  = "field.min.length"
	CodeComplexity = "field.complexity"
	CodeInvalid    = "field.invalid"
	CodeDuplicate  = "field.duplicate"
	CodeType       = "field.type"
)

// Errors accumulates field-level validation failures. The zero value is
// ready to use. Errors is not safe for concurrent use.
type Errors struct {
	entries []models.FieldError
}

// Reject records a failure for field.
func (e *Errors) Reject(field, code, message string) {
	e.entries = append(e.entries, models.FieldError{
		Field:   field,
		Code:    code,
		Message: message,
	})
}

// HasErrors reports whether anything was recorded.
func (e *Errors) HasErrors() bool {
	return e != nil && len(e.entries) > 0
}

// HasFieldError reports whether field was rejected with code.
func (e *Errors) HasFieldError(field, code string) bool {
	if e == nil {
		return false
	}
	for _, entry := range e.entries {
		if entry.Field == field && entry.Code == code {
			return true
		}
	}
	return false
}

// All returns a copy of the recorded failures ordered by field name. Entries
// of the same field keep the order in which they were recorded.
func (e *Errors) All() []models.FieldError {
	if e == nil {
		return nil
	}
	out := make([]models.FieldError, len(e.entries))
	copy(out, e.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// Error implements the error interface.
func (e *Errors) Error() string {
	all := e.All()
	parts := make([]string, 0, len(all))
	for _, fe := range all {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
