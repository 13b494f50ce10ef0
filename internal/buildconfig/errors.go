package buildconfig

import (
	"errors"
	"strings"
)

var (
	// ErrMissingVariable indicates that a required environment variable is
	// absent or empty.
	ErrMissingVariable = errors.New("missing required environment variable")

	// ErrReadingDotenv indicates that an existing dotenv file could not be
	// read or parsed.
	ErrReadingDotenv = errors.New("error reading dotenv file")
)

// MissingVariablesError lists the required variables that were not set.
type MissingVariablesError struct {
	Names []string
}

func (e *MissingVariablesError) Error() string {
	return ErrMissingVariable.Error() + ": " + strings.Join(e.Names, ", ")
}

func (e *MissingVariablesError) Unwrap() error {
	return ErrMissingVariable
}
