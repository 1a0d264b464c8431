package game

import (
	"testing"

	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

func TestDamageClampsAtZero(t *testing.T) {
	h := newCrewTestHarness(t)
	mage := h.placeAt(ArchetypeWhiteMage, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	h.beginPlay()

	s := h.state()
	s.mu.Lock()
	s.dealDamage(nil, s.figures[mage], 99)
	s.mu.Unlock()

	f := h.figure(mage)
	if f.Life != 0 {
		t.Errorf("life never goes negative, got %d", f.Life)
	}
	if !f.Dead {
		t.Errorf("expected the figure to be dead")
	}
}

func TestDeathMovesFigureToDeadPool(t *testing.T) {
	h := newCrewTestHarness(t)
	mage := h.placeAt(ArchetypeWhiteMage, rules.PlayerTwo, board.Position{Row: 3, Col: 3})
	h.beginPlay()
	h.kill(mage)

	s := h.state()
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inDeadPool(rules.PlayerTwo, mage) {
		t.Errorf("expected the figure in its owner's dead pool")
	}
	if s.board.Occupied(board.Position{Row: 3, Col: 3}) {
		t.Errorf("a dead figure must vacate its cell")
	}
	if s.scores[rules.PlayerOne] != 1 {
		t.Errorf("expected the opponent to score, got %d", s.scores[rules.PlayerOne])
	}
	if s.aliveCount(rules.PlayerTwo) != 0 {
		t.Errorf("dead figures must leave the alive list")
	}
}

func TestRepeatedLethalDamageScoresOnce(t *testing.T) {
	h := newCrewTestHarness(t)
	mage := h.placeAt(ArchetypeWhiteMage, rules.PlayerTwo, board.Position{Row: 3, Col: 3})
	h.beginPlay()

	s := h.state()
	s.mu.Lock()
	s.dealDamage(nil, s.figures[mage], 99)
	s.dealDamage(nil, s.figures[mage], 99)
	s.mu.Unlock()

	if got := h.score(rules.PlayerOne); got != 1 {
		t.Errorf("a figure dies once, expected score 1, got %d", got)
	}
}

func TestZeroAndNegativeDamageIgnored(t *testing.T) {
	h := newCrewTestHarness(t)
	knight := h.placeAt(ArchetypeKnight, rules.PlayerOne, board.Position{Row: 3, Col: 3})
	h.beginPlay()

	s := h.state()
	s.mu.Lock()
	s.dealDamage(nil, s.figures[knight], 0)
	s.dealDamage(nil, s.figures[knight], -3)
	s.mu.Unlock()

	if got := h.figure(knight).Life; got != 7 {
		t.Errorf("expected knight untouched at 7 life, got %d", got)
	}
}

func TestDeathEmitsEvents(t *testing.T) {
	h := newCrewTestHarness(t)
	mage := h.placeAt(ArchetypeWhiteMage, rules.PlayerTwo, board.Position{Row: 3, Col: 3})
	h.beginPlay()
	events := h.collectEvents()

	h.kill(mage)

	var damaged, died bool
	for _, e := range *events {
		switch e.Type {
		case rules.EventFigureDamaged:
			damaged = e.FigureID == mage
		case rules.EventFigureDied:
			died = e.FigureID == mage
		}
	}
	if !damaged || !died {
		t.Errorf("expected damage and death events, got damaged=%v died=%v", damaged, died)
	}
}
