package santa

import "github.com/vigneshprasad96/digital-xc-assignment/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the
// `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root package,
// while still providing a convenient `santa.Participant`, `santa.Logger`,
// etc. for users.
type (
	Participant  = types.Participant
	Pairing      = types.Pairing
	ForbiddenSet = types.ForbiddenSet
)

// Re-export interfaces from the internal types package for convenience.
type (
	Strategy         = types.Strategy
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export sentinel errors from the internal types package so callers can
// check outcomes with errors.Is against the root package alone.
var (
	ErrInfeasible           = types.ErrInfeasible
	ErrTooFewParticipants   = types.ErrTooFewParticipants
	ErrDuplicateParticipant = types.ErrDuplicateParticipant
)
