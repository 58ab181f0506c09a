package types

import "math/rand/v2"

// Strategy computes a complete assignment for a roster of participants.
//
// Implementations must return one pairing per participant where every
// participant gives exactly once and receives exactly once, no participant is
// assigned to themselves, and no pairing violates the forbidden set. When no
// such assignment exists, implementations return ErrInfeasible.
//
// The rng parameter drives any randomized choices; implementations that are
// fully deterministic may ignore it. Callers own the rng and its seeding
// policy.
type Strategy interface {
	// Assign produces a valid assignment or an error.
	//
	// Parameters:
	//   - participants: Roster to assign, already validated and deduplicated
	//   - forbidden: Directed pairs that must not appear in the result
	//   - rng: Source of randomness, never nil when called by the engine
	//
	// Returns:
	//   - []Pairing: One pairing per participant on success
	//   - error: ErrInfeasible when no valid assignment exists, or a
	//     strategy-specific error such as ErrAttemptsExhausted
	Assign(participants []Participant, forbidden ForbiddenSet, rng *rand.Rand) ([]Pairing, error)
}
