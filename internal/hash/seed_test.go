package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRosterSeed(t *testing.T) {
	keys := []string{"alice@example.com", "bob@example.com", "charlie@example.com"}

	t.Run("stable across calls", func(t *testing.T) {
		require.Equal(t, RosterSeed(keys, 0), RosterSeed(keys, 0))
	})

	t.Run("order-insensitive", func(t *testing.T) {
		shuffled := []string{"charlie@example.com", "alice@example.com", "bob@example.com"}
		require.Equal(t, RosterSeed(keys, 0), RosterSeed(shuffled, 0))
	})

	t.Run("membership-sensitive", func(t *testing.T) {
		other := []string{"alice@example.com", "bob@example.com", "diana@example.com"}
		require.NotEqual(t, RosterSeed(keys, 0), RosterSeed(other, 0))
	})

	t.Run("base-seed-sensitive", func(t *testing.T) {
		require.NotEqual(t, RosterSeed(keys, 0), RosterSeed(keys, 1))
	})

	t.Run("does not reorder the input slice", func(t *testing.T) {
		in := []string{"z@example.com", "a@example.com"}
		RosterSeed(in, 0)
		require.Equal(t, []string{"z@example.com", "a@example.com"}, in)
	})
}
