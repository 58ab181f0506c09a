// Package santa generates Secret Santa gift assignments with no
// self-assignment and no repeats from the prior cycle.
//
// Given a roster of participants and last cycle's pairings, the engine
// produces a single permutation over the roster: every participant gives
// exactly once and receives exactly once, never to themselves and never to
// the person they gave to last cycle.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import santa "github.com/vigneshprasad96/digital-xc-assignment"
//
//	cfg := santa.DefaultConfig()
//	engine, err := santa.NewEngine(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pairings, err := engine.Generate(roster, previous)
//	if errors.Is(err, santa.ErrInfeasible) {
//	    // The constraints admit no valid assignment; this is a property
//	    // of the input, not a transient failure.
//	}
//
// # Key Features
//
//   - Exact feasibility verdicts: randomized shuffles with a bipartite
//     matching fallback, so "unlucky so far" is never confused with
//     "truly infeasible"
//   - Injected randomness: explicit seeds or roster-derived deterministic
//     seeding for reproducible runs
//   - Directional history: last cycle's A→B pairing forbids A→B, not B→A
//   - Stable output: results sorted by giver key for diffable runs
//
// # Architecture
//
// The engine delegates construction to a pluggable Strategy:
//
//	Shuffle (bounded random attempts) → Matching (augmenting-path search)
//
// The randomized phase resolves the common feasible case in a handful of
// attempts. When its budget runs out, the matching phase builds the
// bipartite compatibility graph and searches for a perfect matching; no
// perfect matching exists iff the input is infeasible.
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import "github.com/vigneshprasad96/digital-xc-assignment/strategy"
//
//	st := strategy.NewShuffleWithFallback(
//	    strategy.WithShuffleAttempts(2000),
//	)
//	engine, err := santa.NewEngine(&cfg, santa.WithStrategy(st), santa.WithLogger(logger))
package santa
