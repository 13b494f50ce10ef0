package buildconfig

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var secretsValidator = newSecretsValidator()

// newSecretsValidator reports fields by their env tag so validation errors
// carry environment variable names instead of Go field names.
func newSecretsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("env")
	})
	return v
}

// Validate reports every required variable that is absent from environ or set
// to the empty string. The returned error is a *[MissingVariablesError] and
// matches [ErrMissingVariable] under errors.Is.
func Validate(environ map[string]string) error {
	s, err := parseSecrets(environ)
	if err != nil {
		return err
	}

	err = secretsValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating build secrets: %w", err)
	}

	return &MissingVariablesError{
		Names: lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
			return fe.Field()
		}),
	}
}

// Missing returns the names of required variables that are absent or empty in
// environ, in the order of [RequiredVariables].
func Missing(environ map[string]string) []string {
	var missingErr *MissingVariablesError
	if errors.As(Validate(environ), &missingErr) {
		return missingErr.Names
	}

	return nil
}
