package strategy

import (
	"math/rand/v2"
	"slices"

	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

// Matching implements constructive assignment via bipartite perfect
// matching over the compatibility graph.
type Matching struct {
	maxAugmentSteps int
}

var _ types.Strategy = (*Matching)(nil)

// MatchingOption configures a Matching strategy.
type MatchingOption func(*Matching)

// NewMatching creates a new bipartite-matching strategy.
//
// The strategy treats givers and receivers as the two sides of a bipartite
// graph with an edge wherever the forbidden set allows the pair, then runs
// an augmenting-path search for a perfect matching. No perfect matching
// exists iff no valid assignment exists, so the verdict is exact: the
// strategy returns types.ErrInfeasible only for truly unsatisfiable input.
//
// Givers are processed in sorted key order so the verdict is deterministic.
// When an rng is supplied, each giver's candidate receivers are tried in
// random order, so repeated feasible runs can produce different valid
// assignments without affecting the verdict.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAugmentSteps)
//
// Returns:
//   - *Matching: Initialized matching strategy
//
// Example:
//
//	m := strategy.NewMatching()
//	pairings, err := m.Assign(roster, forbidden, rng)
func NewMatching(opts ...MatchingOption) *Matching {
	m := &Matching{}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithMaxAugmentSteps bounds the total augmenting-path steps across one
// Assign call.
//
// The search always terminates, so the budget exists only to cap
// pathological worst cases. 0 means unbounded (default). When the budget
// is hit, Assign returns ErrSearchBudgetExceeded, never a feasibility
// verdict.
//
// Parameters:
//   - n: Maximum augmenting steps (0 = unbounded)
//
// Returns:
//   - MatchingOption: Configuration option
func WithMaxAugmentSteps(n int) MatchingOption {
	return func(m *Matching) {
		if n > 0 {
			m.maxAugmentSteps = n
		}
	}
}

// Assign constructs an assignment by finding a perfect matching.
//
// Parameters:
//   - participants: Roster to assign
//   - forbidden: Directional exclusions
//   - rng: Random source for candidate ordering (nil = sorted order)
//
// Returns:
//   - []types.Pairing: Valid assignment when one exists
//   - error: types.ErrInfeasible when no perfect matching exists, or
//     ErrSearchBudgetExceeded when the step budget runs out first
func (m *Matching) Assign(participants []types.Participant, forbidden types.ForbiddenSet, rng *rand.Rand) ([]types.Pairing, error) {
	n := len(participants)
	if n < 2 {
		return nil, types.ErrTooFewParticipants
	}

	givers := make([]types.Participant, n)
	copy(givers, participants)
	slices.SortFunc(givers, types.Participant.Compare)

	// Edge i->j exists iff givers[i] may give to givers[j].
	adjacency := make([][]int, n)
	for i := range givers {
		for j := range givers {
			if forbidden.Allows(givers[i], givers[j]) {
				adjacency[i] = append(adjacency[i], j)
			}
		}
		if rng != nil {
			rng.Shuffle(len(adjacency[i]), func(a, b int) {
				adjacency[i][a], adjacency[i][b] = adjacency[i][b], adjacency[i][a]
			})
		}
	}

	search := &augmentSearch{
		adjacency:   adjacency,
		matchedWith: make([]int, n),
		budget:      m.maxAugmentSteps,
	}
	for j := range search.matchedWith {
		search.matchedWith[j] = -1
	}

	for i := range givers {
		found, err := search.augment(i, make([]bool, n))
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, types.ErrInfeasible
		}
	}

	pairings := make([]types.Pairing, 0, n)
	for j, i := range search.matchedWith {
		pairings = append(pairings, types.Pairing{Giver: givers[i], Receiver: givers[j]})
	}

	return pairings, nil
}

// augmentSearch carries the mutable state of one Kuhn augmenting-path run.
type augmentSearch struct {
	adjacency [][]int
	// matchedWith[j] is the giver currently matched to receiver j, -1 if none.
	matchedWith []int
	budget      int
	steps       int
}

// augment tries to extend the matching with an alternating path from giver i.
func (s *augmentSearch) augment(i int, visited []bool) (bool, error) {
	for _, j := range s.adjacency[i] {
		s.steps++
		if s.budget > 0 && s.steps > s.budget {
			return false, ErrSearchBudgetExceeded
		}
		if visited[j] {
			continue
		}
		visited[j] = true

		if s.matchedWith[j] == -1 {
			s.matchedWith[j] = i

			return true, nil
		}

		found, err := s.augment(s.matchedWith[j], visited)
		if err != nil {
			return false, err
		}
		if found {
			s.matchedWith[j] = i

			return true, nil
		}
	}

	return false, nil
}
