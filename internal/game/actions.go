package game

import (
	"fmt"

	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

// placeFigure validates and applies a setup placement.
func (s *crewGameState) placeFigure(t Archetype, owner rules.Player, pos board.Position) (string, rules.Result) {
	switch s.turns.Phase() {
	case rules.PhaseInProgress:
		return "", rules.Denied(rules.ReasonSetupOver, "setup is already complete")
	case rules.PhaseGameOver:
		return "", rules.Denied(rules.ReasonGameOver, "game is over")
	}
	if _, ok := archetypeTable[t]; !ok {
		return "", rules.Denied(rules.ReasonWrongArchetype, "unknown archetype")
	}
	if !owner.Valid() {
		return "", rules.Denied(rules.ReasonFigureNotFound, "unknown player")
	}
	if !pos.Valid() {
		return "", rules.Denied(rules.ReasonOutOfBounds, fmt.Sprintf("position %s is off the board", pos))
	}
	if !inStartZone(owner, pos) {
		return "", rules.Denied(rules.ReasonOutsideStartZone, fmt.Sprintf("%s is outside %s's start zone", pos, owner))
	}
	if s.board.IsTerrain(pos) {
		return "", rules.Denied(rules.ReasonTerrain, "cannot place on terrain")
	}
	if s.board.Occupied(pos) {
		return "", rules.Denied(rules.ReasonOccupied, fmt.Sprintf("position %s is occupied", pos))
	}
	if s.hasArchetype(owner, t) {
		return "", rules.Denied(rules.ReasonDuplicateFigure, fmt.Sprintf("%s already fields a %s", owner, t))
	}

	f := NewFigure(t, owner)
	s.figures[f.ID] = f
	s.alive = append(s.alive, f.ID)
	s.enterBoard(f, pos)

	s.bus.Publish(rules.Event{
		Type:     rules.EventFigurePlaced,
		FigureID: f.ID,
		Player:   owner,
		Detail:   fmt.Sprintf("%s placed at %s", f, pos),
	})

	if s.setupComplete() {
		s.turns.Begin()
		s.bus.Publish(rules.Event{
			Type:   rules.EventGameStarted,
			Detail: "both squads placed, game begins",
		})
	}

	return f.ID, rules.Allowed(fmt.Sprintf("placed %s at %s", f.Type, pos))
}

// gate performs the checks shared by every in-play action: the game
// must be running, the reference must resolve to a living figure, and
// that figure must belong to the active player.
func (s *crewGameState) gate(figureID string) (*Figure, rules.Result) {
	switch s.turns.Phase() {
	case rules.PhaseSetup:
		return nil, rules.Denied(rules.ReasonSetupIncomplete, "setup is not complete")
	case rules.PhaseGameOver:
		return nil, rules.Denied(rules.ReasonGameOver, "game is over")
	}
	f, ok := s.figure(figureID)
	if !ok {
		return nil, rules.Denied(rules.ReasonFigureNotFound, "no such figure")
	}
	if f.Dead {
		return nil, rules.Denied(rules.ReasonFigureDead, "figure is dead")
	}
	if f.Owner != s.turns.ActivePlayer() {
		return nil, rules.Denied(rules.ReasonNotYourTurn, fmt.Sprintf("it is %s's turn", s.turns.ActivePlayer()))
	}
	return f, rules.Result{OK: true}
}

// move validates and applies a movement action.
func (s *crewGameState) move(figureID string, to board.Position) rules.Result {
	f, res := s.gate(figureID)
	if !res.OK {
		return res
	}
	if f.HasMoved || f.HasActed {
		return rules.Denied(rules.ReasonAlreadyMoved, "figure has already moved or acted this turn")
	}
	if f.Contained() {
		return rules.Denied(rules.ReasonContained, "figure is contained and cannot move")
	}
	if !to.Valid() {
		return rules.Denied(rules.ReasonOutOfBounds, fmt.Sprintf("position %s is off the board", to))
	}
	if s.board.IsTerrain(to) {
		return rules.Denied(rules.ReasonTerrain, "cannot move to terrain")
	}
	if s.board.Occupied(to) {
		return rules.Denied(rules.ReasonOccupied, fmt.Sprintf("position %s is occupied", to))
	}
	if f.DistanceTo(to) > f.MoveRange() {
		return rules.Denied(rules.ReasonOutOfRange, "move is out of range")
	}
	if !s.board.PathClear(f.Position, to, f.Diagonal(), false) {
		return rules.Denied(rules.ReasonPathBlocked, "path is blocked")
	}

	from := f.Position
	s.relocate(f, to)
	f.HasMoved = true

	s.bus.Publish(rules.Event{
		Type:     rules.EventFigureMoved,
		FigureID: f.ID,
		Player:   f.Owner,
		Detail:   fmt.Sprintf("%s moved %s → %s", f.Type, from, to),
	})

	return rules.Allowed(fmt.Sprintf("moved to %s", to))
}

// attack validates and applies a basic attack.
func (s *crewGameState) attack(figureID string, targetPos board.Position) rules.Result {
	f, res := s.gate(figureID)
	if !res.OK {
		return res
	}
	if f.HasActed {
		return rules.Denied(rules.ReasonAlreadyActed, "figure has already acted this turn")
	}
	if f.Contained() {
		return rules.Denied(rules.ReasonContained, "figure is contained and cannot attack")
	}
	target, ok := s.figureAt(targetPos)
	if !ok {
		return rules.Denied(rules.ReasonNoTarget, fmt.Sprintf("no target at %s", targetPos))
	}
	if target.Owner == f.Owner {
		return rules.Denied(rules.ReasonFriendlyTarget, "cannot attack friendly figures")
	}
	if f.DistanceTo(targetPos) > f.Reach() {
		return rules.Denied(rules.ReasonOutOfRange, "target out of reach")
	}
	// Target cell is excluded from the block check; the target itself
	// never obstructs the shot.
	if !s.board.PathClear(f.Position, targetPos, f.Diagonal(), false) {
		return rules.Denied(rules.ReasonPathBlocked, "no line of sight")
	}

	damage := f.AttackPower()
	if f.Caster() && target.Type == ArchetypeBarbarian {
		damage++ // fear of the occult
	}

	s.dealDamage(f, target, damage)
	f.HasActed = true

	return rules.Allowed(fmt.Sprintf("attack dealt %d damage", damage))
}
