package game

import (
	"fmt"

	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

// endTurn clears the per-turn flags of the ending player's figures,
// decays containment counters on every figure regardless of owner,
// flips the active player and evaluates win conditions.
func (s *crewGameState) endTurn() rules.Result {
	switch s.turns.Phase() {
	case rules.PhaseSetup:
		return rules.Denied(rules.ReasonSetupIncomplete, "setup is not complete")
	case rules.PhaseGameOver:
		return rules.Denied(rules.ReasonGameOver, "game is over")
	}

	ending := s.turns.ActivePlayer()
	for _, id := range s.alive {
		f := s.figures[id]
		if f.Owner == ending {
			f.HasMoved = false
			f.HasActed = false
		}
	}
	for _, id := range s.alive {
		s.figures[id].Counters.Decay()
	}

	s.turns.AdvanceTurn()

	s.bus.Publish(rules.Event{
		Type:   rules.EventTurnEnded,
		Player: ending,
		Amount: s.turns.TurnNumber(),
		Detail: fmt.Sprintf("%s ended turn, %s to act", ending, s.turns.ActivePlayer()),
	})

	s.evaluateWin()

	return rules.Allowed(fmt.Sprintf("%s's turn begins", s.turns.ActivePlayer()))
}

// evaluateWin checks the win conditions in fixed order: score
// threshold for player one, then player two, then elimination. The
// first satisfied condition declares the winner and ends the game.
func (s *crewGameState) evaluateWin() {
	for _, p := range rules.Players() {
		if s.scores[p] >= s.winScore {
			s.finish(p)
			return
		}
	}

	if s.aliveCount(rules.PlayerOne) == 0 {
		s.finish(rules.PlayerTwo)
	} else if s.aliveCount(rules.PlayerTwo) == 0 {
		s.finish(rules.PlayerOne)
	}
}

func (s *crewGameState) finish(winner rules.Player) {
	s.turns.Finish(winner)
	s.bus.Publish(rules.Event{
		Type:   rules.EventGameOver,
		Player: winner,
		Detail: fmt.Sprintf("%s wins", winner),
	})
}
