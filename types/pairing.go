package types

// Pairing is a single directed assignment: Giver gives a gift to Receiver.
type Pairing struct {
	// Giver is the participant giving the gift.
	Giver Participant `json:"giver"`

	// Receiver is the participant receiving the gift.
	Receiver Participant `json:"receiver"`
}

// IsSelf reports whether the pairing assigns a participant to themselves.
//
// Self-pairings are never valid in an assignment; this exists so loaders and
// validators can detect corrupt history rows.
func (p Pairing) IsSelf() bool {
	return p.Giver.Equal(p.Receiver)
}

// Compare orders pairings by giver key, breaking ties by receiver key.
//
// Returns:
//   - int: -1 if p < q, 0 if equal, +1 if p > q
func (p Pairing) Compare(q Pairing) int {
	if c := p.Giver.Compare(q.Giver); c != 0 {
		return c
	}

	return p.Receiver.Compare(q.Receiver)
}
