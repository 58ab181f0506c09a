package strategy

import (
	"fmt"
	"math/rand/v2"

	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

// Shuffle implements randomized derangement construction with a bounded
// attempt budget.
type Shuffle struct {
	maxAttempts int
	onAttempts  func(attempts int, success bool)
}

var _ types.Strategy = (*Shuffle)(nil)

// ShuffleOption configures a Shuffle strategy.
type ShuffleOption func(*Shuffle)

// NewShuffle creates a new bounded random-shuffle strategy.
//
// Each attempt draws a uniformly random permutation of receivers and
// accepts it iff every giver-receiver pair is allowed. The strategy cannot
// prove infeasibility: when the budget runs out it returns
// types.ErrAttemptsExhausted so callers can fall back to Matching.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAttempts, WithAttemptObserver)
//
// Returns:
//   - *Shuffle: Initialized shuffle strategy
//
// Example:
//
//	sh := strategy.NewShuffle(strategy.WithMaxAttempts(2000))
//	pairings, err := sh.Assign(roster, forbidden, rng)
func NewShuffle(opts ...ShuffleOption) *Shuffle {
	s := &Shuffle{
		maxAttempts: 1000, // default
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithMaxAttempts sets the randomized attempt budget.
//
// Higher values lower the odds of an unnecessary fallback on feasible but
// tightly constrained rosters (default: 1000).
//
// Parameters:
//   - n: Maximum number of shuffle attempts
//
// Returns:
//   - ShuffleOption: Configuration option
func WithMaxAttempts(n int) ShuffleOption {
	return func(s *Shuffle) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithAttemptObserver sets a callback invoked once per Assign call with the
// number of attempts consumed and whether an assignment was found.
//
// Parameters:
//   - fn: Observer callback
//
// Returns:
//   - ShuffleOption: Configuration option
func WithAttemptObserver(fn func(attempts int, success bool)) ShuffleOption {
	return func(s *Shuffle) {
		s.onAttempts = fn
	}
}

// Assign attempts to construct a valid assignment by repeated random
// shuffling.
//
// The participants slice is never mutated; each attempt shuffles a private
// copy of the receiver list.
//
// Parameters:
//   - participants: Roster to assign
//   - forbidden: Directional exclusions
//   - rng: Random source (must be non-nil)
//
// Returns:
//   - []types.Pairing: Valid assignment when one is found within budget
//   - error: types.ErrAttemptsExhausted when the budget runs out
func (s *Shuffle) Assign(participants []types.Participant, forbidden types.ForbiddenSet, rng *rand.Rand) ([]types.Pairing, error) {
	if len(participants) < 2 {
		return nil, types.ErrTooFewParticipants
	}

	receivers := make([]types.Participant, len(participants))
	copy(receivers, participants)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		rng.Shuffle(len(receivers), func(i, j int) {
			receivers[i], receivers[j] = receivers[j], receivers[i]
		})

		if pairings, ok := buildPairings(participants, receivers, forbidden); ok {
			if s.onAttempts != nil {
				s.onAttempts(attempt, true)
			}

			return pairings, nil
		}
	}

	if s.onAttempts != nil {
		s.onAttempts(s.maxAttempts, false)
	}

	return nil, fmt.Errorf("%w after %d attempts", types.ErrAttemptsExhausted, s.maxAttempts)
}

// buildPairings pairs participants[i] with receivers[i], rejecting the
// whole permutation on the first disallowed pair.
func buildPairings(participants, receivers []types.Participant, forbidden types.ForbiddenSet) ([]types.Pairing, bool) {
	pairings := make([]types.Pairing, 0, len(participants))
	for i, giver := range participants {
		if !forbidden.Allows(giver, receivers[i]) {
			return nil, false
		}
		pairings = append(pairings, types.Pairing{Giver: giver, Receiver: receivers[i]})
	}

	return pairings, true
}
