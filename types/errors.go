package types

import "errors"

// Sentinel errors for the assignment engine.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).

// Input errors - the roster reaching the engine is unusable.
var (
	// ErrTooFewParticipants is returned when the roster has fewer than the
	// configured minimum number of participants.
	ErrTooFewParticipants = errors.New("at least 2 participants are required")

	// ErrDuplicateParticipant is returned when two participants share the
	// same canonical key. Duplicates should be caught upstream, but the
	// engine rejects them defensively rather than silently misbehave.
	ErrDuplicateParticipant = errors.New("duplicate participant")
)

// Outcome errors - verdicts about the constraint set itself.
var (
	// ErrInfeasible is returned when no assignment satisfies the forbidden
	// pairs for the given roster. It is a deterministic property of the
	// input, not a transient failure: repeating the call with the same
	// inputs yields the same verdict.
	ErrInfeasible = errors.New("no valid assignment exists for the given constraints")

	// ErrAttemptsExhausted is returned by the shuffle strategy when its
	// randomized attempt budget runs out. It signals an exhausted retry
	// budget, not infeasibility; callers fall back to the matching
	// strategy for a definitive verdict.
	ErrAttemptsExhausted = errors.New("randomized attempt budget exhausted")
)

// IsInvalidInput reports whether an error indicates that the engine was
// handed an unusable roster rather than an unsatisfiable constraint set.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true for roster validation failures, false otherwise
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrTooFewParticipants) || errors.Is(err, ErrDuplicateParticipant)
}
