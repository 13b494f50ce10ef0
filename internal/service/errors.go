package service

import "errors"

var (
	// ErrStrictValidationFailed is returned by a strict BuildConfigService
	// when required variables are missing.
	ErrStrictValidationFailed = errors.New("strict validation failed")
)
