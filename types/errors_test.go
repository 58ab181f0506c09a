package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInvalidInput(t *testing.T) {
	t.Run("detects direct input errors", func(t *testing.T) {
		require.True(t, IsInvalidInput(ErrTooFewParticipants))
		require.True(t, IsInvalidInput(ErrDuplicateParticipant))
	})

	t.Run("detects wrapped input errors", func(t *testing.T) {
		err := fmt.Errorf("row 3: %w", ErrDuplicateParticipant)
		require.True(t, IsInvalidInput(err))
	})

	t.Run("excludes outcome and unrelated errors", func(t *testing.T) {
		require.False(t, IsInvalidInput(ErrInfeasible))
		require.False(t, IsInvalidInput(ErrAttemptsExhausted))
		require.False(t, IsInvalidInput(errors.New("disk on fire")))
		require.False(t, IsInvalidInput(nil))
	})
}
