package game

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

// crewTestHarness provides utilities for setting up game scenarios. It
// seeds figures directly into the internal state so tests can build any
// board position without walking through the placement wizard.
type crewTestHarness struct {
	t      *testing.T
	engine *CrewEngine
	gameID string
}

func newCrewTestHarness(t *testing.T) *crewTestHarness {
	return newCrewTestHarnessWithOptions(t, Options{})
}

func newCrewTestHarnessWithOptions(t *testing.T, opts Options) *crewTestHarness {
	logger := zaptest.NewLogger(t)
	engine := NewCrewEngine(logger)

	gameID := "test-game"
	if err := engine.StartGameWithOptions(gameID, opts); err != nil {
		t.Fatalf("failed to start game: %v", err)
	}

	return &crewTestHarness{
		t:      t,
		engine: engine,
		gameID: gameID,
	}
}

// state returns the internal game state for direct manipulation.
func (h *crewTestHarness) state() *crewGameState {
	h.engine.mu.RLock()
	s := h.engine.games[h.gameID]
	h.engine.mu.RUnlock()
	return s
}

// placeAt seeds a figure directly onto the board, bypassing start zone
// and phase checks.
func (h *crewTestHarness) placeAt(t Archetype, owner rules.Player, pos board.Position) string {
	s := h.state()
	s.mu.Lock()
	defer s.mu.Unlock()

	f := NewFigure(t, owner)
	s.figures[f.ID] = f
	s.alive = append(s.alive, f.ID)
	if !s.enterBoard(f, pos) {
		h.t.Fatalf("failed to seed %s at %s", t, pos)
	}
	return f.ID
}

// beginPlay forces the game out of setup without placing full squads.
func (h *crewTestHarness) beginPlay() {
	s := h.state()
	s.mu.Lock()
	s.turns.Begin()
	s.mu.Unlock()
}

// setActive hands the turn to the given player.
func (h *crewTestHarness) setActive(p rules.Player) {
	s := h.state()
	s.mu.Lock()
	s.turns.SetActivePlayer(p)
	s.mu.Unlock()
}

// figure returns the internal figure record.
func (h *crewTestHarness) figure(id string) *Figure {
	s := h.state()
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.figures[id]
	if !ok {
		h.t.Fatalf("figure %s not found", id)
	}
	return f
}

// setLife overrides a figure's current life.
func (h *crewTestHarness) setLife(id string, life int) {
	s := h.state()
	s.mu.Lock()
	s.figures[id].Life = life
	s.mu.Unlock()
}

// kill moves a figure straight to its owner's dead pool, awarding the
// kill like any lethal damage would.
func (h *crewTestHarness) kill(id string) {
	s := h.state()
	s.mu.Lock()
	s.dealDamage(nil, s.figures[id], s.figures[id].Life)
	s.mu.Unlock()
}

// score returns the player's current kill count.
func (h *crewTestHarness) score(p rules.Player) int {
	s := h.state()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scores[p]
}

// requireOK fails the test unless the action resolved.
func (h *crewTestHarness) requireOK(res rules.Result, err error) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("unexpected engine error: %v", err)
	}
	if !res.OK {
		h.t.Fatalf("expected action to resolve, got %s: %s", res.Code, res.Reason)
	}
}

// requireDenied fails the test unless the action was denied with the
// given reason code.
func (h *crewTestHarness) requireDenied(code rules.ReasonCode, res rules.Result, err error) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("unexpected engine error: %v", err)
	}
	if res.OK {
		h.t.Fatalf("expected denial with code %s, but action resolved", code)
	}
	if res.Code != code {
		h.t.Fatalf("expected denial code %s, got %s: %s", code, res.Code, res.Reason)
	}
}

// collectEvents subscribes a recorder and returns the slice it fills.
func (h *crewTestHarness) collectEvents() *[]rules.Event {
	events := &[]rules.Event{}
	if _, err := h.engine.Subscribe(h.gameID, func(e rules.Event) {
		*events = append(*events, e)
	}); err != nil {
		h.t.Fatalf("failed to subscribe: %v", err)
	}
	return events
}
