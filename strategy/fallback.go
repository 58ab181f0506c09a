package strategy

import (
	"errors"
	"math/rand/v2"

	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

// Observer receives progress callbacks from a ShuffleWithFallback run.
//
// All fields are optional. Callbacks are invoked synchronously on the
// assignment path and must be cheap.
type Observer struct {
	// OnShuffleAttempts is called once per run with the number of shuffle
	// attempts consumed and whether the randomized phase succeeded.
	OnShuffleAttempts func(attempts int, success bool)

	// OnFallback is called when the randomized phase exhausts its budget
	// and the matching phase runs.
	OnFallback func()
}

// ShuffleWithFallback composes the randomized and constructive strategies:
// bounded random shuffles first, bipartite matching when the budget runs out.
type ShuffleWithFallback struct {
	shuffleAttempts int
	maxAugmentSteps int
	observer        Observer

	shuffle  *Shuffle
	matching *Matching
}

var _ types.Strategy = (*ShuffleWithFallback)(nil)

// FallbackOption configures a ShuffleWithFallback strategy.
type FallbackOption func(*ShuffleWithFallback)

// NewShuffleWithFallback creates the recommended two-phase strategy.
//
// The randomized phase handles the common feasible case in a handful of
// attempts; the matching phase turns an exhausted budget into an exact
// verdict. The composite therefore never returns
// types.ErrAttemptsExhausted: the final error for unsatisfiable input is
// always types.ErrInfeasible.
//
// Parameters:
//   - opts: Optional configuration (WithShuffleAttempts, WithAugmentSteps, WithObserver)
//
// Returns:
//   - *ShuffleWithFallback: Initialized composite strategy
//
// Example:
//
//	st := strategy.NewShuffleWithFallback(
//	    strategy.WithShuffleAttempts(2000),
//	)
//	pairings, err := st.Assign(roster, forbidden, rng)
func NewShuffleWithFallback(opts ...FallbackOption) *ShuffleWithFallback {
	s := &ShuffleWithFallback{
		shuffleAttempts: 1000, // default
	}

	for _, opt := range opts {
		opt(s)
	}

	s.shuffle = NewShuffle(
		WithMaxAttempts(s.shuffleAttempts),
		WithAttemptObserver(s.observer.OnShuffleAttempts),
	)
	s.matching = NewMatching(WithMaxAugmentSteps(s.maxAugmentSteps))

	return s
}

// WithShuffleAttempts sets the randomized attempt budget (default: 1000).
//
// Parameters:
//   - n: Maximum number of shuffle attempts before falling back
//
// Returns:
//   - FallbackOption: Configuration option
func WithShuffleAttempts(n int) FallbackOption {
	return func(s *ShuffleWithFallback) {
		if n > 0 {
			s.shuffleAttempts = n
		}
	}
}

// WithAugmentSteps bounds the matching phase's augmenting-step budget
// (default: unbounded).
//
// Parameters:
//   - n: Maximum augmenting steps (0 = unbounded)
//
// Returns:
//   - FallbackOption: Configuration option
func WithAugmentSteps(n int) FallbackOption {
	return func(s *ShuffleWithFallback) {
		if n > 0 {
			s.maxAugmentSteps = n
		}
	}
}

// WithObserver sets progress callbacks.
//
// Parameters:
//   - obs: Observer with optional callbacks
//
// Returns:
//   - FallbackOption: Configuration option
func WithObserver(obs Observer) FallbackOption {
	return func(s *ShuffleWithFallback) {
		s.observer = obs
	}
}

// Assign runs the randomized phase and falls back to matching on budget
// exhaustion.
//
// Parameters:
//   - participants: Roster to assign
//   - forbidden: Directional exclusions
//   - rng: Random source (must be non-nil)
//
// Returns:
//   - []types.Pairing: Valid assignment when one exists
//   - error: types.ErrInfeasible when no valid assignment exists
func (s *ShuffleWithFallback) Assign(participants []types.Participant, forbidden types.ForbiddenSet, rng *rand.Rand) ([]types.Pairing, error) {
	pairings, err := s.shuffle.Assign(participants, forbidden, rng)
	if err == nil {
		return pairings, nil
	}
	if !errors.Is(err, types.ErrAttemptsExhausted) {
		return nil, err
	}

	if s.observer.OnFallback != nil {
		s.observer.OnFallback()
	}

	return s.matching.Assign(participants, forbidden, rng)
}
