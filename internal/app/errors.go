package app

import "errors"

var (
	// ErrNilDependency is returned by NewApp when a required dependency is
	// missing.
	ErrNilDependency = errors.New("nil dependency")
)
