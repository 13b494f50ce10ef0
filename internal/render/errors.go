package render

import "errors"

// ErrUnknownFormat is returned for an output format that is not one of
// [Formats].
var ErrUnknownFormat = errors.New("unknown output format")
