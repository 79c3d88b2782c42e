package validators

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	structValidate *validator.Validate
	structOnce     sync.Once
)

func getStructValidator() *validator.Validate {
	structOnce.Do(func() {
		structValidate = validator.New(validator.WithRequiredStructEnabled())

		// report json names so errors line up with the request body
		structValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return structValidate
}

// ValidateStruct checks the `validate` tags of a request body and records
// every failure in errs. A non-struct argument returns ErrUnsupportedType.
func ValidateStruct(s any, errs *Errors) error {
	err := getStructValidator().Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			errs.Reject(fe.Field(), CodeRequired, capitalize(fe.Field())+" is required")
		default:
			errs.Reject(fe.Field(), CodeInvalid, capitalize(fe.Field())+" is invalid")
		}
	}
	return nil
}
