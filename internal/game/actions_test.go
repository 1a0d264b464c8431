package game

import (
	"testing"

	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/counters"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

func TestMoveWithinRange(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	h.placeAt(ArchetypeKnight, rules.PlayerTwo, board.Position{Row: 7, Col: 7})
	h.beginPlay()

	// Knight moves 4 orthogonally.
	res, err := h.engine.Move(h.gameID, knight, board.Position{Row: 2, Col: 6})
	h.requireOK(res, err)

	f := h.figure(knight)
	if f.Position != (board.Position{Row: 2, Col: 6}) {
		t.Errorf("expected knight at (2,6), got %s", f.Position)
	}
	if !f.HasMoved {
		t.Errorf("expected move flag to be set")
	}
}

func TestMoveOutOfRange(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	h.beginPlay()

	// 5 orthogonal cells, one past the knight's range.
	res, err := h.engine.Move(h.gameID, knight, board.Position{Row: 2, Col: 7})
	h.requireDenied(rules.ReasonOutOfRange, res, err)
}

func TestMoveMetricPerArchetype(t *testing.T) {
	h := newCrewTestHarness(t)
	barbarian := h.placeAt(ArchetypeBarbarian, rules.PlayerOne, board.Position{Row: 4, Col: 4})
	arbalist := h.placeAt(ArchetypeArbalist, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	h.beginPlay()

	// A diagonal step costs the barbarian two orthogonal moves, so
	// (4,4) to (6,6) is distance 4 and beyond its range of 3.
	res, err := h.engine.Move(h.gameID, barbarian, board.Position{Row: 6, Col: 6})
	h.requireDenied(rules.ReasonOutOfRange, res, err)

	// The arbalist uses the king-move metric: (2,2) to (4,4) is
	// distance 2, exactly its range.
	res, err = h.engine.Move(h.gameID, arbalist, board.Position{Row: 4, Col: 4})
	h.requireOK(res, err)
}

func TestMoveBlockedByIntermediateCell(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	h.placeAt(ArchetypeBarbarian, rules.PlayerOne, board.Position{Row: 2, Col: 4})
	h.beginPlay()

	// Destination itself is free, but the straight line crosses the
	// barbarian.
	res, err := h.engine.Move(h.gameID, knight, board.Position{Row: 2, Col: 6})
	h.requireDenied(rules.ReasonPathBlocked, res, err)
}

func TestMoveRejectsTerrainAndOccupied(t *testing.T) {
	h := newCrewTestHarnessWithOptions(t, Options{Terrain: []board.Position{{Row: 3, Col: 3}}})
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 3, Col: 2})
	h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 3, Col: 1})
	h.beginPlay()

	res, err := h.engine.Move(h.gameID, knight, board.Position{Row: 3, Col: 3})
	h.requireDenied(rules.ReasonTerrain, res, err)

	res, err = h.engine.Move(h.gameID, knight, board.Position{Row: 3, Col: 1})
	h.requireDenied(rules.ReasonOccupied, res, err)

	res, err = h.engine.Move(h.gameID, knight, board.Position{Row: 3, Col: 9})
	h.requireDenied(rules.ReasonOutOfBounds, res, err)
}

func TestMoveOncePerTurn(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	h.beginPlay()

	res, err := h.engine.Move(h.gameID, knight, board.Position{Row: 2, Col: 3})
	h.requireOK(res, err)

	res, err = h.engine.Move(h.gameID, knight, board.Position{Row: 2, Col: 4})
	h.requireDenied(rules.ReasonAlreadyMoved, res, err)
}

func TestMoveDeniedAfterActing(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 2, Col: 3})
	h.beginPlay()

	res, err := h.engine.Attack(h.gameID, knight, board.Position{Row: 2, Col: 3})
	h.requireOK(res, err)

	res, err = h.engine.Move(h.gameID, knight, board.Position{Row: 3, Col: 2})
	h.requireDenied(rules.ReasonAlreadyMoved, res, err)
}

func TestMoveRequiresOwnTurn(t *testing.T) {
	h := newCrewTestHarness(t)
	h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	enemy := h.placeAt(ArchetypeKnight, rules.PlayerTwo, board.Position{Row: 5, Col: 5})
	h.beginPlay()

	res, err := h.engine.Move(h.gameID, enemy, board.Position{Row: 5, Col: 6})
	h.requireDenied(rules.ReasonNotYourTurn, res, err)
}

func TestContainedFigureCannotMoveOrAttack(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 2, Col: 2})
	h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 2, Col: 3})
	h.beginPlay()

	h.figure(knight).Counters.Set(counters.Containment, 2)

	res, err := h.engine.Move(h.gameID, knight, board.Position{Row: 3, Col: 2})
	h.requireDenied(rules.ReasonContained, res, err)

	res, err = h.engine.Attack(h.gameID, knight, board.Position{Row: 2, Col: 3})
	h.requireDenied(rules.ReasonContained, res, err)
}

func TestAttackDealsArchetypeDamage(t *testing.T) {
	h := newCrewTestHarness(t)
	barbarian := h.placeAt(ArchetypeBarbarian, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	knight := h.placeAt(ArchetypeKnight, rules.PlayerTwo, board.Position{Row: 3, Col: 4})
	h.beginPlay()

	res, err := h.engine.Attack(h.gameID, barbarian, board.Position{Row: 3, Col: 4})
	h.requireOK(res, err)

	if got := h.figure(knight).Life; got != 3 {
		t.Errorf("expected knight at 3 life after a 4 damage hit, got %d", got)
	}
	if !h.figure(barbarian).HasActed {
		t.Errorf("expected attack to consume the act")
	}
}

func TestCasterBonusAgainstBarbarian(t *testing.T) {
	h := newCrewTestHarness(t)
	mage := h.placeAt(ArchetypeBlackMage, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	barbarian := h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 3, Col: 5})
	knight := h.placeAt(ArchetypeKnight, rules.PlayerTwo, board.Position{Row: 4, Col: 3})
	h.beginPlay()

	// Mage attack is 1, but barbarians fear casters: 1+1 = 2.
	res, err := h.engine.Attack(h.gameID, mage, board.Position{Row: 3, Col: 5})
	h.requireOK(res, err)
	if got := h.figure(barbarian).Life; got != 6 {
		t.Errorf("expected barbarian at 6 life, got %d", got)
	}

	// Against any other archetype the bonus does not apply.
	h.figure(mage).HasActed = false
	res, err = h.engine.Attack(h.gameID, mage, board.Position{Row: 4, Col: 3})
	h.requireOK(res, err)
	if got := h.figure(knight).Life; got != 6 {
		t.Errorf("expected knight at 6 life, got %d", got)
	}
}

func TestAttackReach(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	arbalist := h.placeAt(ArchetypeArbalist, rules.PlayerOne, board.Position{Row: 0, Col: 0})
	h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 3, Col: 5})
	target := h.placeAt(ArchetypeWhiteMage, rules.PlayerTwo, board.Position{Row: 3, Col: 1})
	h.beginPlay()

	// Knight reach is 1; two cells away is too far.
	res, err := h.engine.Attack(h.gameID, knight, board.Position{Row: 3, Col: 5})
	h.requireDenied(rules.ReasonOutOfRange, res, err)

	// Arbalist reach is 3 with the king-move metric.
	res, err = h.engine.Attack(h.gameID, arbalist, board.Position{Row: 3, Col: 1})
	h.requireOK(res, err)
	if got := h.figure(target).Life; got != 2 {
		t.Errorf("expected white mage at 2 life, got %d", got)
	}
}

func TestAttackRejectsFriendlyAndEmptyCell(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	h.placeAt(ArchetypeBarbarian, rules.PlayerOne, board.Position{Row: 3, Col: 4})
	h.beginPlay()

	res, err := h.engine.Attack(h.gameID, knight, board.Position{Row: 3, Col: 4})
	h.requireDenied(rules.ReasonFriendlyTarget, res, err)

	res, err = h.engine.Attack(h.gameID, knight, board.Position{Row: 3, Col: 2})
	h.requireDenied(rules.ReasonNoTarget, res, err)
}

func TestAttackTargetDoesNotBlockItself(t *testing.T) {
	h := newCrewTestHarness(t)
	arbalist := h.placeAt(ArchetypeArbalist, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	target := h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 3, Col: 5})
	h.beginPlay()

	// The target sits at the end of the line; only intermediate cells
	// can block.
	res, err := h.engine.Attack(h.gameID, arbalist, board.Position{Row: 3, Col: 5})
	h.requireOK(res, err)
	if got := h.figure(target).Life; got != 6 {
		t.Errorf("expected barbarian at 6 life, got %d", got)
	}
}

func TestAttackBlockedByInterveningFigure(t *testing.T) {
	h := newCrewTestHarness(t)
	arbalist := h.placeAt(ArchetypeArbalist, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 3, Col: 4})
	h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 3, Col: 5})
	h.beginPlay()

	res, err := h.engine.Attack(h.gameID, arbalist, board.Position{Row: 3, Col: 5})
	h.requireDenied(rules.ReasonPathBlocked, res, err)
}

func TestAttackOncePerTurn(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 3, Col: 4})
	h.beginPlay()

	res, err := h.engine.Attack(h.gameID, knight, board.Position{Row: 3, Col: 4})
	h.requireOK(res, err)

	res, err = h.engine.Attack(h.gameID, knight, board.Position{Row: 3, Col: 4})
	h.requireDenied(rules.ReasonAlreadyActed, res, err)
}

func TestMoveThenAttackSameTurn(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 3, Col: 1})
	h.placeAt(ArchetypeBarbarian, rules.PlayerTwo, board.Position{Row: 3, Col: 4})
	h.beginPlay()

	res, err := h.engine.Move(h.gameID, knight, board.Position{Row: 3, Col: 3})
	h.requireOK(res, err)

	res, err = h.engine.Attack(h.gameID, knight, board.Position{Row: 3, Col: 4})
	h.requireOK(res, err)
}
