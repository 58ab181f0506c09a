package roster

import "errors"

// Sentinel errors returned by the Store.
var (
	// ErrMissingColumns is returned when a CSV header lacks required columns.
	ErrMissingColumns = errors.New("missing required CSV columns")

	// ErrEmptyName is returned when a participant row has a blank name.
	ErrEmptyName = errors.New("participant name cannot be empty")

	// ErrInvalidEmail is returned when a participant row has a malformed email.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmptyRoster is returned when the employee file contains no data rows.
	ErrEmptyRoster = errors.New("employee file contains no participants")
)
