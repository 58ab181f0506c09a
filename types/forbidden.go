package types

// pairKey identifies a directed giver->receiver edge by canonical keys.
type pairKey struct {
	giver    string
	receiver string
}

// ForbiddenSet records giver->receiver pairs that must not appear in a new
// assignment. Pairs are directional: forbidding A->B does not forbid B->A.
//
// The zero value is a valid, empty set that forbids nothing beyond self-pairs.
type ForbiddenSet struct {
	pairs map[pairKey]struct{}
}

// NewForbiddenSet builds a forbidden set from a previous year's pairings.
//
// Self-pairings in the input are ignored; they are structurally denied
// regardless of history.
//
// Parameters:
//   - previous: Pairings from the prior exchange, may be nil or empty
//
// Returns:
//   - ForbiddenSet: Set forbidding each giver->receiver pair in previous
func NewForbiddenSet(previous []Pairing) ForbiddenSet {
	var set ForbiddenSet
	for _, p := range previous {
		if p.IsSelf() {
			continue
		}
		set.Forbid(p.Giver, p.Receiver)
	}

	return set
}

// Forbid adds a directed giver->receiver pair to the set.
func (s *ForbiddenSet) Forbid(giver, receiver Participant) {
	if s.pairs == nil {
		s.pairs = make(map[pairKey]struct{})
	}
	s.pairs[pairKey{giver: giver.Key(), receiver: receiver.Key()}] = struct{}{}
}

// Allows reports whether giver may be assigned to receiver.
//
// Self-pairings are always denied. An empty or zero-value set allows every
// non-self pairing.
func (s ForbiddenSet) Allows(giver, receiver Participant) bool {
	if giver.Equal(receiver) {
		return false
	}
	if s.pairs == nil {
		return true
	}
	_, found := s.pairs[pairKey{giver: giver.Key(), receiver: receiver.Key()}]

	return !found
}

// Len returns the number of forbidden giver->receiver pairs, not counting the
// implicit self-pair rule.
func (s ForbiddenSet) Len() int {
	return len(s.pairs)
}
