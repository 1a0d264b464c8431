package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnTrackerLifecycle(t *testing.T) {
	tt := NewTurnTracker()

	assert.Equal(t, PhaseSetup, tt.Phase())
	assert.Equal(t, PlayerOne, tt.ActivePlayer())
	assert.Equal(t, 1, tt.TurnNumber())
	_, over := tt.Winner()
	assert.False(t, over)

	tt.Begin()
	require.Equal(t, PhaseInProgress, tt.Phase())

	tt.AdvanceTurn()
	assert.Equal(t, PlayerTwo, tt.ActivePlayer())
	assert.Equal(t, 2, tt.TurnNumber())

	tt.AdvanceTurn()
	assert.Equal(t, PlayerOne, tt.ActivePlayer())
	assert.Equal(t, 3, tt.TurnNumber())

	tt.Finish(PlayerTwo)
	assert.Equal(t, PhaseGameOver, tt.Phase())
	winner, over := tt.Winner()
	assert.True(t, over)
	assert.Equal(t, PlayerTwo, winner)
}

func TestTurnTrackerBeginOnlyFromSetup(t *testing.T) {
	tt := NewTurnTracker()
	tt.Begin()
	tt.Finish(PlayerOne)

	// Begin after the game is over must not resurrect it.
	tt.Begin()
	assert.Equal(t, PhaseGameOver, tt.Phase())
}

func TestTurnTrackerFirstFinishWins(t *testing.T) {
	tt := NewTurnTracker()
	tt.Begin()

	tt.Finish(PlayerOne)
	tt.Finish(PlayerTwo)

	winner, over := tt.Winner()
	require.True(t, over)
	assert.Equal(t, PlayerOne, winner, "a finished game keeps its first winner")
}

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, "SETUP", PhaseSetup.String())
	assert.Equal(t, "IN_PROGRESS", PhaseInProgress.String())
	assert.Equal(t, "GAME_OVER", PhaseGameOver.String())
}
