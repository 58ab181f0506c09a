package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vigneshprasad96/digital-xc-assignment/internal/logging"
	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

// CSV column names shared with the original spreadsheet templates.
const (
	colEmployeeName  = "Employee_Name"
	colEmployeeEmail = "Employee_EmailID"
	colChildName     = "Secret_Child_Name"
	colChildEmail    = "Secret_Child_EmailID"
)

var (
	participantColumns = []string{colEmployeeName, colEmployeeEmail}
	pairingColumns     = []string{colEmployeeName, colEmployeeEmail, colChildName, colChildEmail}
)

// Store reads and writes the CSV files surrounding an assignment run.
type Store struct {
	logger types.Logger
}

// NewStore creates a new CSV store.
//
// Parameters:
//   - logger: Logger for progress and skipped-row warnings (nil = silent)
//
// Returns:
//   - *Store: Initialized store
func NewStore(logger types.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Store{logger: logger}
}

// LoadParticipants reads and validates the employee list.
//
// The file must carry the Employee_Name and Employee_EmailID columns.
// Every row must have a non-empty name and a well-formed, unique email;
// the first offending row fails the load with its row number.
//
// Parameters:
//   - path: Path to the employee CSV file
//
// Returns:
//   - []types.Participant: Validated roster in file order
//   - error: File, header, or row validation error
func (s *Store) LoadParticipants(path string) ([]types.Participant, error) {
	s.logger.Info("reading employees", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open employee file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyRoster)
		}

		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	index, err := columnIndex(header, participantColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var participants []types.Participant
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, row, err)
		}

		p := types.Participant{
			Name:  strings.TrimSpace(record[index[colEmployeeName]]),
			Email: strings.TrimSpace(record[index[colEmployeeEmail]]),
		}
		if err := ValidateParticipant(p); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, row, err)
		}
		participants = append(participants, p)
	}

	if len(participants) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyRoster)
	}
	if err := checkDuplicates(participants); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.logger.Info("employees loaded", "path", path, "count", len(participants))

	return participants, nil
}

// LoadPreviousPairings reads the prior cycle's assignments.
//
// A missing file is not an error: first runs have no history, so the store
// logs a warning and returns an empty list. Malformed rows (short records,
// bad emails, self-assignments) are skipped with a warning rather than
// failing the run, since stale history should not block a new cycle.
//
// Parameters:
//   - path: Path to the previous-assignments CSV file
//
// Returns:
//   - []types.Pairing: Prior pairings (empty when the file is absent)
//   - error: File or header error
func (s *Store) LoadPreviousPairings(path string) ([]types.Pairing, error) {
	s.logger.Info("reading previous assignments", "path", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("previous assignments file not found, assuming no history", "path", path)

			return nil, nil
		}

		return nil, fmt.Errorf("open previous assignments: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged history rows, skip them below

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	index, err := columnIndex(header, pairingColumns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var pairings []types.Pairing
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, row, err)
		}

		pairing, ok := s.parsePairing(record, index, path, row)
		if !ok {
			continue
		}
		pairings = append(pairings, pairing)
	}

	s.logger.Info("previous assignments loaded", "path", path, "count", len(pairings))

	return pairings, nil
}

// parsePairing converts one history record, reporting whether it is usable.
func (s *Store) parsePairing(record []string, index map[string]int, path string, row int) (types.Pairing, bool) {
	for _, col := range pairingColumns {
		if index[col] >= len(record) {
			s.logger.Warn("skipping short history row", "path", path, "row", row)

			return types.Pairing{}, false
		}
	}

	pairing := types.Pairing{
		Giver: types.Participant{
			Name:  strings.TrimSpace(record[index[colEmployeeName]]),
			Email: strings.TrimSpace(record[index[colEmployeeEmail]]),
		},
		Receiver: types.Participant{
			Name:  strings.TrimSpace(record[index[colChildName]]),
			Email: strings.TrimSpace(record[index[colChildEmail]]),
		},
	}

	if err := ValidateParticipant(pairing.Giver); err != nil {
		s.logger.Warn("skipping invalid history row", "path", path, "row", row, "error", err)

		return types.Pairing{}, false
	}
	if err := ValidateParticipant(pairing.Receiver); err != nil {
		s.logger.Warn("skipping invalid history row", "path", path, "row", row, "error", err)

		return types.Pairing{}, false
	}
	if pairing.IsSelf() {
		s.logger.Warn("skipping self-assignment in history", "path", path, "row", row)

		return types.Pairing{}, false
	}

	return pairing, true
}

// WritePairings persists an assignment run as the four-column CSV,
// creating the output directory if needed.
//
// Parameters:
//   - path: Destination file path
//   - pairings: Assignment to persist, in the order to be written
//
// Returns:
//   - error: Directory, file, or write error
func (s *Store) WritePairings(path string, pairings []types.Pairing) error {
	s.logger.Info("writing assignments", "path", path, "count", len(pairings))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(pairingColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range pairings {
		record := []string{p.Giver.Name, p.Giver.Email, p.Receiver.Name, p.Receiver.Email}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write assignment row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	return nil
}
