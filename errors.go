package santa

import "errors"

// Sentinel errors returned by the Engine constructor.
var (
	// ErrInvalidConfig is returned when the configuration is nil or invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)
