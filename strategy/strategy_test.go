package strategy

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vigneshprasad96/digital-xc-assignment/types"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func participant(name string) types.Participant {
	return types.Participant{Name: name, Email: name + "@example.com"}
}

func roster(names ...string) []types.Participant {
	out := make([]types.Participant, 0, len(names))
	for _, n := range names {
		out = append(out, participant(n))
	}

	return out
}

// requireValidAssignment checks the derangement invariants: every
// participant gives exactly once and receives exactly once, no one is
// assigned to themselves, and no pairing is forbidden.
func requireValidAssignment(t *testing.T, participants []types.Participant, forbidden types.ForbiddenSet, pairings []types.Pairing) {
	t.Helper()

	require.Len(t, pairings, len(participants))

	givers := make(map[string]bool, len(participants))
	receivers := make(map[string]bool, len(participants))
	for _, p := range pairings {
		require.False(t, p.IsSelf(), "self-assignment %s", p.Giver.Key())
		require.True(t, forbidden.Allows(p.Giver, p.Receiver),
			"forbidden pairing %s -> %s", p.Giver.Key(), p.Receiver.Key())
		require.False(t, givers[p.Giver.Key()], "giver %s appears twice", p.Giver.Key())
		require.False(t, receivers[p.Receiver.Key()], "receiver %s appears twice", p.Receiver.Key())
		givers[p.Giver.Key()] = true
		receivers[p.Receiver.Key()] = true
	}

	for _, p := range participants {
		require.True(t, givers[p.Key()], "participant %s never gives", p.Key())
		require.True(t, receivers[p.Key()], "participant %s never receives", p.Key())
	}
}
