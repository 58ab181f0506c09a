package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	santatest "github.com/vigneshprasad96/digital-xc-assignment/testing"
	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(santatest.NewTestLogger(t))
}

func TestNewStore(t *testing.T) {
	t.Run("nil logger defaults to silent", func(t *testing.T) {
		store := NewStore(nil)

		path := writeFile(t, "employees.csv",
			"Employee_Name,Employee_EmailID\nAlice,alice@example.com\nBob,bob@example.com\n")
		participants, err := store.LoadParticipants(path)

		require.NoError(t, err)
		require.Len(t, participants, 2)
	})
}

func TestStore_LoadParticipants(t *testing.T) {
	store := newTestStore(t)

	t.Run("loads a well-formed employee file", func(t *testing.T) {
		path := writeFile(t, "employees.csv",
			"Employee_Name,Employee_EmailID\n"+
				"Alice,alice@example.com\n"+
				"Bob , bob@example.com \n")

		participants, err := store.LoadParticipants(path)

		require.NoError(t, err)
		require.Len(t, participants, 2)
		require.Equal(t, types.Participant{Name: "Alice", Email: "alice@example.com"}, participants[0])
		require.Equal(t, "bob@example.com", participants[1].Email, "fields are trimmed")
	})

	t.Run("accepts reordered columns", func(t *testing.T) {
		path := writeFile(t, "employees.csv",
			"Employee_EmailID,Employee_Name\n"+
				"alice@example.com,Alice\n")

		participants, err := store.LoadParticipants(path)

		require.NoError(t, err)
		require.Equal(t, "Alice", participants[0].Name)
	})

	t.Run("rejects a missing column", func(t *testing.T) {
		path := writeFile(t, "employees.csv", "Employee_Name\nAlice\n")

		_, err := store.LoadParticipants(path)
		require.ErrorIs(t, err, ErrMissingColumns)
	})

	t.Run("reports the offending row number", func(t *testing.T) {
		path := writeFile(t, "employees.csv",
			"Employee_Name,Employee_EmailID\n"+
				"Alice,alice@example.com\n"+
				"Bob,not-an-email\n")

		_, err := store.LoadParticipants(path)

		require.ErrorIs(t, err, ErrInvalidEmail)
		require.Contains(t, err.Error(), "row 3")
	})

	t.Run("rejects duplicate emails case-insensitively", func(t *testing.T) {
		path := writeFile(t, "employees.csv",
			"Employee_Name,Employee_EmailID\n"+
				"Alice,alice@example.com\n"+
				"Alias,ALICE@example.com\n")

		_, err := store.LoadParticipants(path)
		require.ErrorIs(t, err, types.ErrDuplicateParticipant)
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		path := writeFile(t, "employees.csv", "")

		_, err := store.LoadParticipants(path)
		require.ErrorIs(t, err, ErrEmptyRoster)
	})

	t.Run("rejects a header-only file", func(t *testing.T) {
		path := writeFile(t, "employees.csv", "Employee_Name,Employee_EmailID\n")

		_, err := store.LoadParticipants(path)
		require.ErrorIs(t, err, ErrEmptyRoster)
	})

	t.Run("reports a missing file", func(t *testing.T) {
		_, err := store.LoadParticipants(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}

func TestStore_LoadPreviousPairings(t *testing.T) {
	store := newTestStore(t)

	t.Run("loads prior assignments", func(t *testing.T) {
		path := writeFile(t, "previous.csv",
			"Employee_Name,Employee_EmailID,Secret_Child_Name,Secret_Child_EmailID\n"+
				"Alice,alice@example.com,Bob,bob@example.com\n"+
				"Bob,bob@example.com,Alice,alice@example.com\n")

		pairings, err := store.LoadPreviousPairings(path)

		require.NoError(t, err)
		require.Len(t, pairings, 2)
		require.Equal(t, "alice@example.com", pairings[0].Giver.Email)
		require.Equal(t, "bob@example.com", pairings[0].Receiver.Email)
	})

	t.Run("missing file means empty history", func(t *testing.T) {
		pairings, err := store.LoadPreviousPairings(filepath.Join(t.TempDir(), "nope.csv"))

		require.NoError(t, err)
		require.Empty(t, pairings)
	})

	t.Run("empty file means empty history", func(t *testing.T) {
		path := writeFile(t, "previous.csv", "")

		pairings, err := store.LoadPreviousPairings(path)

		require.NoError(t, err)
		require.Empty(t, pairings)
	})

	t.Run("skips malformed rows instead of failing", func(t *testing.T) {
		path := writeFile(t, "previous.csv",
			"Employee_Name,Employee_EmailID,Secret_Child_Name,Secret_Child_EmailID\n"+
				"Alice,alice@example.com,Bob,bob@example.com\n"+
				"Short,short@example.com\n"+
				"Bad,not-an-email,Bob,bob@example.com\n"+
				"Selfish,self@example.com,Selfish,self@example.com\n"+
				"Diana,diana@example.com,Charlie,charlie@example.com\n")

		pairings, err := store.LoadPreviousPairings(path)

		require.NoError(t, err)
		require.Len(t, pairings, 2)
	})

	t.Run("rejects a wrong header", func(t *testing.T) {
		path := writeFile(t, "previous.csv", "Employee_Name,Employee_EmailID\n")

		_, err := store.LoadPreviousPairings(path)
		require.ErrorIs(t, err, ErrMissingColumns)
	})
}

func TestStore_WritePairings(t *testing.T) {
	store := newTestStore(t)

	t.Run("round-trips through LoadPreviousPairings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "assignments.csv")
		pairings := []types.Pairing{
			{
				Giver:    types.Participant{Name: "Alice", Email: "alice@example.com"},
				Receiver: types.Participant{Name: "Bob", Email: "bob@example.com"},
			},
			{
				Giver:    types.Participant{Name: "Bob", Email: "bob@example.com"},
				Receiver: types.Participant{Name: "Alice", Email: "alice@example.com"},
			},
		}

		require.NoError(t, store.WritePairings(path, pairings))

		loaded, err := store.LoadPreviousPairings(path)
		require.NoError(t, err)
		require.Equal(t, pairings, loaded)
	})

	t.Run("writes the expected header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "assignments.csv")

		require.NoError(t, store.WritePairings(path, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "Employee_Name,Employee_EmailID,Secret_Child_Name,Secret_Child_EmailID\n", string(data))
	})
}
