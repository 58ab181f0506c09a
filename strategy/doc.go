// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies determine how givers are paired with receivers
// subject to the forbidden-pair constraints. The package includes three
// built-in strategies:
//
//   - ShuffleWithFallback: Randomized shuffles with a constructive matching fallback (recommended, engine default)
//   - Shuffle: Bounded randomized permutation attempts only
//   - Matching: Deterministic bipartite perfect-matching construction only
//
// # Strategy Selection Guide
//
// ShuffleWithFallback:
//   - Use for production runs
//   - Fast randomized path for the common feasible case
//   - Falls back to matching when the attempt budget runs out, so the
//     final verdict is always exact: a valid assignment or ErrInfeasible
//   - Configuration: shuffle attempt budget, augmenting-step budget, observer
//
// Shuffle:
//   - Use when constraints are known to be light and speed matters
//   - Cannot distinguish "unlucky so far" from "truly infeasible";
//     exhaustion surfaces as ErrAttemptsExhausted, never ErrInfeasible
//
// Matching:
//   - Use when a deterministic feasibility verdict is the point
//   - No valid assignment exists iff the bipartite compatibility graph has
//     no perfect matching
//
// Custom strategies can be implemented by satisfying the types.Strategy
// interface.
package strategy
