package types

import "strings"

// Participant is a single member of the gift exchange.
//
// A participant is identified by email address; Name is display-only and
// carried through to the output unchanged. Identity comparisons are
// case-insensitive on the email, matching how company directories treat
// addresses.
type Participant struct {
	// Name is the display name written to the output file.
	Name string `json:"name"`

	// Email uniquely identifies the participant.
	Email string `json:"email"`
}

// Key returns the canonical identity of the participant: the trimmed,
// lowercased email address. All constraint checks and ordering use this key.
//
// Returns:
//   - string: Canonical participant key ("" if the email is blank)
func (p Participant) Key() string {
	return strings.ToLower(strings.TrimSpace(p.Email))
}

// Equal reports whether two participants identify the same person.
//
// Equality is case-insensitive on the email address; display names are not
// considered.
func (p Participant) Equal(q Participant) bool {
	return p.Key() == q.Key()
}

// Compare orders participants by canonical key, breaking ties by name.
//
// Ordering rules:
//   - Compare keys (lowercased emails) using string order
//   - Equal keys fall back to display-name order
//
// Returns:
//   - int: -1 if p < q, 0 if equal, +1 if p > q
func (p Participant) Compare(q Participant) int {
	pk, qk := p.Key(), q.Key()
	if pk != qk {
		if pk < qk {
			return -1
		}

		return 1
	}
	if p.Name == q.Name {
		return 0
	}
	if p.Name < q.Name {
		return -1
	}

	return 1
}
