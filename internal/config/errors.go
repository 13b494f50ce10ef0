package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and the flag
// parser when the tool configuration is incomplete or invalid.
var (
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidSourceConfigs indicates dotenv loading is enabled without a
	// file path.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrUnexpectedArguments indicates positional arguments after the flags.
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)
