package roster

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vigneshprasad96/digital-xc-assignment/internal/redact"
	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the address has a plausible mailbox@domain
// shape. This is a format check, not a deliverability check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidateParticipant checks a single participant record.
//
// Parameters:
//   - p: Participant to check
//
// Returns:
//   - error: ErrEmptyName or ErrInvalidEmail, nil if valid
func ValidateParticipant(p types.Participant) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !ValidEmail(p.Email) {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, redact.Email(p.Email))
	}

	return nil
}

// checkDuplicates rejects rosters where two rows share a canonical key.
func checkDuplicates(participants []types.Participant) error {
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

// columnIndex maps required column names to their positions in the header.
func columnIndex(header, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return index, nil
}
