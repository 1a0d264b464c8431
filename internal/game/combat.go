package game

import (
	"fmt"

	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

// dealDamage is the single path by which life is reduced. It subtracts
// the amount, clamps at zero and handles death exactly once: the
// figure leaves its board slot and the alive list, joins its owner's
// dead pool and the opponent scores one kill. Calling it again on an
// already-dead figure is a no-op, so simultaneous multi-target hits
// can never double-score.
func (s *crewGameState) dealDamage(source, target *Figure, amount int) {
	if target.Dead || amount <= 0 {
		return
	}

	target.Life -= amount
	if target.Life < 0 {
		target.Life = 0
	}

	event := rules.Event{
		Type:     rules.EventFigureDamaged,
		FigureID: target.ID,
		Player:   target.Owner,
		Amount:   amount,
		Detail:   fmt.Sprintf("%s took %d damage", target.Type, amount),
	}
	if source != nil {
		event.SourceID = source.ID
	}
	s.bus.Publish(event)

	if target.Life == 0 {
		s.kill(target)
	}
}

// kill moves a figure to its owner's dead pool and awards the kill.
func (s *crewGameState) kill(target *Figure) {
	target.Dead = true
	s.leaveBoard(target)
	s.removeAlive(target.ID)
	s.deadPools[target.Owner] = append(s.deadPools[target.Owner], target.ID)
	s.scores[target.Owner.Opponent()]++

	s.bus.Publish(rules.Event{
		Type:     rules.EventFigureDied,
		FigureID: target.ID,
		Player:   target.Owner,
		Detail:   fmt.Sprintf("%s died, %s scores", target.Type, target.Owner.Opponent()),
	})
}
