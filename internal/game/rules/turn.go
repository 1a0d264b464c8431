package rules

import "fmt"

// Phase represents the lifecycle of a game.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseInProgress
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseSetup:      "SETUP",
	PhaseInProgress: "IN_PROGRESS",
	PhaseGameOver:   "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// TurnTracker tracks the game phase, the active player and turn
// progression. Transitions are SETUP → IN_PROGRESS → GAME_OVER;
// GAME_OVER is terminal.
type TurnTracker struct {
	phase      Phase
	turnNumber int
	active     Player
	winner     Player
}

// NewTurnTracker creates a tracker in the setup phase with player one
// due to act first.
func NewTurnTracker() *TurnTracker {
	return &TurnTracker{
		phase:      PhaseSetup,
		turnNumber: 1,
		active:     PlayerOne,
	}
}

// Phase returns the current lifecycle phase.
func (tt *TurnTracker) Phase() Phase {
	return tt.phase
}

// TurnNumber returns the current one-based turn number.
func (tt *TurnTracker) TurnNumber() int {
	return tt.turnNumber
}

// ActivePlayer returns the player whose turn it is.
func (tt *TurnTracker) ActivePlayer() Player {
	return tt.active
}

// Winner returns the declared winner once the game is over.
func (tt *TurnTracker) Winner() (Player, bool) {
	if tt.phase != PhaseGameOver {
		return PlayerNone, false
	}
	return tt.winner, true
}

// Begin moves the tracker from setup into play. It is a no-op in any
// other phase.
func (tt *TurnTracker) Begin() {
	if tt.phase == PhaseSetup {
		tt.phase = PhaseInProgress
	}
}

// AdvanceTurn flips the active player and increments the turn counter.
func (tt *TurnTracker) AdvanceTurn() {
	tt.active = tt.active.Opponent()
	tt.turnNumber++
}

// SetActivePlayer overrides the active player. Intended for seeding
// test scenarios.
func (tt *TurnTracker) SetActivePlayer(p Player) {
	if p.Valid() {
		tt.active = p
	}
}

// Finish marks the game over with the given winner. The first call
// wins; later calls are ignored.
func (tt *TurnTracker) Finish(winner Player) {
	if tt.phase == PhaseGameOver {
		return
	}
	tt.phase = PhaseGameOver
	tt.winner = winner
}
