package game

import (
	"fmt"

	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/counters"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

const (
	chargeRange    = 4
	chargeDamage   = 2
	longEyeRange   = board.Size - 1
	longEyeDamage  = 1
	bombDamage     = 2
	reviveLife     = 2
	healAmount     = 3
	containTurns   = 2
	conjureMaxLife = 2
)

// gateAbility layers the ability-specific checks shared by every
// handler on top of the common action gate: correct archetype, not
// already acted, not contained.
func (s *crewGameState) gateAbility(figureID string, ab Ability) (*Figure, rules.Result) {
	f, res := s.gate(figureID)
	if !res.OK {
		return nil, res
	}
	if !f.HasAbility(ab) {
		return nil, rules.Denied(rules.ReasonWrongArchetype, fmt.Sprintf("only specific archetypes can use %s", ab))
	}
	if f.HasActed {
		return nil, rules.Denied(rules.ReasonAlreadyActed, "figure has already acted this turn")
	}
	if f.Contained() {
		return nil, rules.Denied(rules.ReasonContained, "figure is contained")
	}
	return f, rules.Result{OK: true}
}

// inReach is the reach check shared by the spell abilities: orthogonal
// distance regardless of archetype.
func inReach(from, to board.Position, reach int) bool {
	return board.Orthogonal(from, to) <= reach
}

// charge rushes the knight up to four cells along a cardinal
// direction. It lands on the first unoccupied, non-terrain cell; every
// enemy figure it passes through on the way takes damage without
// stopping the rush. Friendly figures are passed through unharmed.
// Consumes both the move and the act for the turn.
func (s *crewGameState) charge(figureID string, dir board.Direction) rules.Result {
	f, res := s.gateAbility(figureID, AbilityCharge)
	if !res.OK {
		return res
	}
	if f.HasMoved {
		return rules.Denied(rules.ReasonAlreadyMoved, "cannot charge after moving")
	}
	if !dir.Cardinal() {
		return rules.Denied(rules.ReasonInvalidDirection, "charge direction must be up, down, left or right")
	}

	landing := noPosition
	var struck []*Figure
	for i := 1; i <= chargeRange; i++ {
		pos := f.Position.Offset(dir, i)
		if !pos.Valid() || s.board.IsTerrain(pos) {
			break
		}
		occupant, occupied := s.figureAt(pos)
		if !occupied {
			landing = pos
			break
		}
		if occupant.Owner != f.Owner {
			struck = append(struck, occupant)
		}
	}
	if landing == noPosition {
		return rules.Denied(rules.ReasonNoLanding, "no valid charge destination")
	}

	from := f.Position
	s.relocate(f, landing)
	for _, target := range struck {
		s.dealDamage(f, target, chargeDamage)
	}
	f.HasMoved = true
	f.HasActed = true

	s.bus.Publish(rules.Event{
		Type:     rules.EventFigureMoved,
		FigureID: f.ID,
		Player:   f.Owner,
		Detail:   fmt.Sprintf("%s charged %s → %s", f.Type, from, landing),
	})

	return rules.Allowed(fmt.Sprintf("charge struck %d figures", len(struck)))
}

// longEye fires the arbalist's snipe along any of the eight
// directions. The first figure in the line settles the outcome: an
// enemy takes the hit, a friendly blocks the shot. Terrain does not
// stop the bolt. Consumes the act only.
func (s *crewGameState) longEye(figureID string, dir board.Direction) rules.Result {
	f, res := s.gateAbility(figureID, AbilityLongEye)
	if !res.OK {
		return res
	}
	if dir == board.DirNone {
		return rules.Denied(rules.ReasonInvalidDirection, "invalid direction")
	}

	for i := 1; i <= longEyeRange; i++ {
		pos := f.Position.Offset(dir, i)
		if !pos.Valid() {
			break
		}
		target, occupied := s.figureAt(pos)
		if !occupied {
			continue
		}
		if target.Owner == f.Owner {
			return rules.Denied(rules.ReasonPathBlocked, "shot blocked by friendly figure")
		}
		s.dealDamage(f, target, longEyeDamage)
		f.HasActed = true
		return rules.Allowed(fmt.Sprintf("long eye hit %s at %s", target.Type, pos))
	}

	return rules.Denied(rules.ReasonNoTarget, "no target in line")
}

// magicBomb detonates the black mage's once-per-game area burst on a
// cell within reach, damaging every figure on the target cell and its
// up to eight neighbors, friend and foe alike.
func (s *crewGameState) magicBomb(casterID string, target board.Position) rules.Result {
	f, res := s.gateAbility(casterID, AbilityMagicBomb)
	if !res.OK {
		return res
	}
	if s.bombUsed[f.Owner] {
		return rules.Denied(rules.ReasonAbilityExhausted, "magic bomb already used this game")
	}
	if !target.Valid() {
		return rules.Denied(rules.ReasonOutOfBounds, fmt.Sprintf("position %s is off the board", target))
	}
	if !inReach(f.Position, target, f.Reach()) {
		return rules.Denied(rules.ReasonOutOfRange, "target out of reach")
	}

	affected := append([]board.Position{target}, target.Neighbors()...)
	var caught []*Figure
	for _, pos := range affected {
		if occupant, ok := s.figureAt(pos); ok {
			caught = append(caught, occupant)
		}
	}
	for _, victim := range caught {
		s.dealDamage(f, victim, bombDamage)
	}

	s.bombUsed[f.Owner] = true
	f.HasActed = true

	return rules.Allowed(fmt.Sprintf("magic bomb caught %d figures", len(caught)))
}

// plague is the black mage's self-sacrifice strike: the caster pays
// cost life and the target loses cost+1. The cost must leave the
// caster alive, so only the target can die from it.
func (s *crewGameState) plague(casterID, targetID string, cost int) rules.Result {
	f, res := s.gateAbility(casterID, AbilityPlague)
	if !res.OK {
		return res
	}
	if cost < 1 || cost >= f.Life {
		return rules.Denied(rules.ReasonInvalidCost, fmt.Sprintf("cost must be between 1 and %d", f.Life-1))
	}
	target, ok := s.figure(targetID)
	if !ok {
		return rules.Denied(rules.ReasonFigureNotFound, "no such target")
	}
	if target.Dead {
		return rules.Denied(rules.ReasonFigureDead, "target is dead")
	}
	if target.Owner == f.Owner {
		return rules.Denied(rules.ReasonFriendlyTarget, "cannot plague friendly figures")
	}
	if !inReach(f.Position, target.Position, f.Reach()) {
		return rules.Denied(rules.ReasonOutOfRange, "target out of reach")
	}

	s.dealDamage(f, f, cost)
	s.dealDamage(f, target, cost+1)
	f.HasActed = true

	return rules.Allowed(fmt.Sprintf("plague cost %d life, target lost %d", cost, cost+1))
}

// vampiricPush revives a figure from the caster's dead pool into the
// caster's start zone. The caster pays 1 life up front; if that kills
// the caster the revival does not happen, the self-damage stands, and
// the act is not consumed.
func (s *crewGameState) vampiricPush(casterID, deadFigureID string, pos board.Position) rules.Result {
	f, res := s.gateAbility(casterID, AbilityVampiricPush)
	if !res.OK {
		return res
	}
	if !s.inDeadPool(f.Owner, deadFigureID) {
		return rules.Denied(rules.ReasonNotInDeadPool, "figure is not in your dead pool")
	}
	if !inStartZone(f.Owner, pos) {
		return rules.Denied(rules.ReasonOutsideStartZone, "must revive in your start zone")
	}
	if s.board.IsTerrain(pos) {
		return rules.Denied(rules.ReasonTerrain, "cannot revive onto terrain")
	}
	if s.board.Occupied(pos) {
		return rules.Denied(rules.ReasonOccupied, fmt.Sprintf("position %s is occupied", pos))
	}

	s.dealDamage(f, f, 1)
	if f.Dead {
		return rules.Denied(rules.ReasonCasterDied, "caster died during the cast")
	}

	revived := s.figures[deadFigureID]
	s.removeFromDeadPool(f.Owner, deadFigureID)
	revived.Dead = false
	revived.Life = reviveLife
	revived.HasMoved = false
	revived.HasActed = false
	revived.Counters.Clear()
	s.enterBoard(revived, pos)
	s.alive = append(s.alive, revived.ID)
	s.scores[f.Owner.Opponent()]--
	f.HasActed = true

	s.bus.Publish(rules.Event{
		Type:     rules.EventFigureRevived,
		FigureID: revived.ID,
		SourceID: f.ID,
		Player:   revived.Owner,
		Amount:   reviveLife,
		Detail:   fmt.Sprintf("%s revived at %s", revived.Type, pos),
	})

	return rules.Allowed(fmt.Sprintf("revived %s at %s", revived.Type, pos))
}

// conjure flips a weakened enemy figure to the caster's side without
// dealing damage. Only targets at conjureMaxLife or less can be taken.
func (s *crewGameState) conjure(casterID, targetID string) rules.Result {
	f, res := s.gateAbility(casterID, AbilityConjure)
	if !res.OK {
		return res
	}
	target, ok := s.figure(targetID)
	if !ok {
		return rules.Denied(rules.ReasonFigureNotFound, "no such target")
	}
	if target.Dead {
		return rules.Denied(rules.ReasonFigureDead, "target is dead")
	}
	if target.Owner == f.Owner {
		return rules.Denied(rules.ReasonFriendlyTarget, "cannot conjure friendly figures")
	}
	if target.Life > conjureMaxLife {
		return rules.Denied(rules.ReasonTargetTooHealthy, "target has too much life")
	}
	if !inReach(f.Position, target.Position, f.Reach()) {
		return rules.Denied(rules.ReasonOutOfRange, "target out of reach")
	}

	target.Owner = f.Owner
	f.HasActed = true

	s.bus.Publish(rules.Event{
		Type:     rules.EventFigureConjured,
		FigureID: target.ID,
		SourceID: f.ID,
		Player:   target.Owner,
		Detail:   fmt.Sprintf("%s now fights for %s", target.Type, f.Owner),
	})

	return rules.Allowed(fmt.Sprintf("conjured %s", target.Type))
}

// heal restores up to healAmount life, capped at the target's maximum.
// Ownership of the target is deliberately unrestricted: the original
// ruleset allows healing either side.
func (s *crewGameState) heal(casterID, targetID string) rules.Result {
	f, res := s.gateAbility(casterID, AbilityHeal)
	if !res.OK {
		return res
	}
	target, ok := s.figure(targetID)
	if !ok {
		return rules.Denied(rules.ReasonFigureNotFound, "no such target")
	}
	if target.Dead {
		return rules.Denied(rules.ReasonFigureDead, "target is dead")
	}
	if !inReach(f.Position, target.Position, f.Reach()) {
		return rules.Denied(rules.ReasonOutOfRange, "target out of reach")
	}

	before := target.Life
	target.Life = min(target.Life+healAmount, target.MaxLife())
	healed := target.Life - before
	f.HasActed = true

	s.bus.Publish(rules.Event{
		Type:     rules.EventFigureHealed,
		FigureID: target.ID,
		SourceID: f.ID,
		Player:   target.Owner,
		Amount:   healed,
		Detail:   fmt.Sprintf("%s healed for %d", target.Type, healed),
	})

	return rules.Allowed(fmt.Sprintf("healed %s for %d life", target.Type, healed))
}

// counterContainment locks an enemy figure out of every action for the
// next containTurns turn boundaries.
func (s *crewGameState) counterContainment(casterID, targetID string) rules.Result {
	f, res := s.gateAbility(casterID, AbilityCounterContainment)
	if !res.OK {
		return res
	}
	target, ok := s.figure(targetID)
	if !ok {
		return rules.Denied(rules.ReasonFigureNotFound, "no such target")
	}
	if target.Dead {
		return rules.Denied(rules.ReasonFigureDead, "target is dead")
	}
	if target.Owner == f.Owner {
		return rules.Denied(rules.ReasonFriendlyTarget, "cannot contain friendly figures")
	}
	if !inReach(f.Position, target.Position, f.Reach()) {
		return rules.Denied(rules.ReasonOutOfRange, "target out of reach")
	}

	target.Counters.Set(counters.Containment, containTurns)
	f.HasActed = true

	s.bus.Publish(rules.Event{
		Type:     rules.EventContainment,
		FigureID: target.ID,
		SourceID: f.ID,
		Player:   target.Owner,
		Amount:   containTurns,
		Detail:   fmt.Sprintf("%s contained for %d turns", target.Type, containTurns),
	})

	return rules.Allowed(fmt.Sprintf("contained %s for %d turns", target.Type, containTurns))
}
