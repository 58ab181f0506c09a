// Package types contains the core types and interfaces of the assignment
// engine.
//
// It is a leaf package: internal packages and strategy implementations
// depend on types without depending on the root package, which re-exports
// the definitions here as aliases for convenience.
//
// The central types are:
//   - Participant: A member of the exchange, identified by lowercased email
//   - Pairing: One giver-to-receiver assignment
//   - ForbiddenSet: Directional exclusions plus the structural no-self rule
//   - Strategy: Pluggable assignment construction algorithm
//
// Sentinel errors distinguish unusable input (ErrTooFewParticipants,
// ErrDuplicateParticipant) from an unsatisfiable constraint set
// (ErrInfeasible) and from an exhausted retry budget (ErrAttemptsExhausted).
package types
