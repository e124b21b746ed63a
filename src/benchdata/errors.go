package benchdata

import "errors"

// The two load-time failures the report tool distinguishes. Everything else
// (write permissions, render failures) propagates untyped and is fatal.
var (
	ErrNotFound      = errors.New("benchmark file not found")
	ErrInvalidFormat = errors.New("benchmark file is not valid JSON")
)
