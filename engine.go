package santa

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vigneshprasad96/digital-xc-assignment/internal/hash"
	"github.com/vigneshprasad96/digital-xc-assignment/internal/logging"
	"github.com/vigneshprasad96/digital-xc-assignment/internal/metrics"
	"github.com/vigneshprasad96/digital-xc-assignment/internal/redact"
	"github.com/vigneshprasad96/digital-xc-assignment/strategy"
	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

// Engine generates gift assignments for a roster of participants.
//
// Engine is the main entry point of the library. Given a roster and the
// prior cycle's pairings it produces a derangement: every participant
// gives exactly once, receives exactly once, never to themselves, and
// never repeating a prior-cycle pairing.
//
// Each Generate call is pure given its inputs and random source: inputs
// are never mutated and no state is shared between calls beyond the
// injected random source.
//
// Lifecycle:
//   - Create with NewEngine()
//   - Call Generate() once per assignment run
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type Assigner interface {
//	    Generate(participants []santa.Participant, previous []santa.Pairing) ([]santa.Pairing, error)
//	}
type Engine struct {
	cfg Config

	// Optional dependencies
	strategy Strategy
	logger   Logger
	metrics  MetricsCollector
	rng      *rand.Rand
}

// NewEngine creates a new Engine instance with the provided configuration.
//
// Returns a concrete *Engine struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
//
// The default strategy is strategy.ShuffleWithFallback wired to the
// engine's metrics collector: bounded random shuffles with a bipartite
// matching fallback, so infeasible input always surfaces as a
// deterministic ErrInfeasible rather than an exhausted retry budget.
//
// Parameters:
//   - cfg: Engine configuration (missing values are defaulted in place)
//   - opts: Optional configuration (strategy, logger, metrics, random source)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if the configuration is invalid
//
// Example:
//
//	cfg := santa.DefaultConfig()
//	engine, err := santa.NewEngine(&cfg, santa.WithLogger(logger))
//	if err != nil { /* handle */ }
//	pairings, err := engine.Generate(roster, previous)
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := engineOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	e := &Engine{
		cfg:      *cfg,
		strategy: options.strategy,
		logger:   options.logger,
		metrics:  options.metrics,
		rng:      options.rng,
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.metrics == nil {
		e.metrics = metrics.NewNop()
	}
	if e.strategy == nil {
		e.strategy = strategy.NewShuffleWithFallback(
			strategy.WithShuffleAttempts(e.cfg.MaxShuffleAttempts),
			strategy.WithAugmentSteps(e.cfg.MaxAugmentSteps),
			strategy.WithObserver(strategy.Observer{
				OnShuffleAttempts: func(attempts int, _ bool) {
					e.metrics.RecordShuffleAttempts(attempts)
				},
				OnFallback: e.metrics.RecordMatchingFallback,
			}),
		)
	}

	return e, nil
}

// Generate produces a complete gift assignment for the roster.
//
// The forbidden set is derived from the prior cycle's pairings; self
// assignment is a structural rule and is always excluded whether or not
// history is supplied. The result is sorted by giver key so repeated runs
// over the same roster are diffable.
//
// Infeasibility is a property of the inputs, not a transient failure:
// calling Generate again with the same roster, history, and deterministic
// randomness yields the same verdict.
//
// Parameters:
//   - participants: Roster to assign (at least Config.MinParticipants, unique emails)
//   - previous: Prior-cycle pairings to avoid (may be nil or empty)
//
// Returns:
//   - []Pairing: Complete assignment sorted by giver key
//   - error: ErrTooFewParticipants or ErrDuplicateParticipant for unusable
//     rosters, ErrInfeasible when no valid assignment exists
func (e *Engine) Generate(participants []Participant, previous []Pairing) ([]Pairing, error) {
	start := time.Now()
	runID := uuid.NewString()

	if err := validateRoster(participants, e.cfg.MinParticipants); err != nil {
		e.logger.Error("roster rejected", "run_id", runID, "error", err)
		e.metrics.RecordGenerateDuration(time.Since(start).Seconds(), "invalid_input")

		return nil, err
	}

	forbidden := types.NewForbiddenSet(previous)

	e.logger.Info("generating assignments",
		"run_id", runID,
		"participants", len(participants),
		"forbidden_pairs", forbidden.Len(),
	)

	// Work on a private copy so callers never observe reordering, and
	// canonicalize its order so roster-derived seeding is independent of
	// input order.
	roster := make([]Participant, len(participants))
	copy(roster, participants)
	slices.SortFunc(roster, Participant.Compare)

	pairings, err := e.strategy.Assign(roster, forbidden, e.randSource(participants))
	if err != nil {
		outcome := "error"
		if errors.Is(err, ErrInfeasible) {
			outcome = "infeasible"
			e.logger.Warn("no valid assignment exists",
				"run_id", runID,
				"participants", len(participants),
				"forbidden_pairs", forbidden.Len(),
			)
		} else {
			e.logger.Error("assignment failed", "run_id", runID, "error", err)
		}
		e.metrics.RecordGenerateDuration(time.Since(start).Seconds(), outcome)

		return nil, err
	}

	sortPairings(pairings)

	e.logger.Info("assignments generated",
		"run_id", runID,
		"pairings", len(pairings),
		"elapsed", time.Since(start),
	)
	e.metrics.RecordGenerateDuration(time.Since(start).Seconds(), "assigned")

	return pairings, nil
}

// randSource resolves the random source for one Generate call.
//
// Resolution order: injected source (WithRand) > explicit Config.Seed >
// roster-derived seed (Config.DeterministicSeed) > time-based seed.
func (e *Engine) randSource(participants []Participant) *rand.Rand {
	if e.rng != nil {
		return e.rng
	}

	seed := e.cfg.Seed
	if seed == 0 && e.cfg.DeterministicSeed {
		keys := make([]string, 0, len(participants))
		for _, p := range participants {
			keys = append(keys, p.Key())
		}
		seed = hash.RosterSeed(keys, 0)
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// validateRoster defensively re-checks what the loader should have caught.
func validateRoster(participants []Participant, minCount int) error {
	if len(participants) < minCount {
		return fmt.Errorf("%w: got %d, need %d", types.ErrTooFewParticipants, len(participants), minCount)
	}

	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		key := p.Key()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s", types.ErrDuplicateParticipant, redact.Email(p.Email))
		}
		seen[key] = struct{}{}
	}

	return nil
}

// sortPairings orders a result by giver key for stable, diffable output.
func sortPairings(pairings []Pairing) {
	slices.SortFunc(pairings, Pairing.Compare)
}
