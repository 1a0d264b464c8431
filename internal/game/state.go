package game

import (
	"sync"

	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

// FiguresPerPlayer is the squad size: one figure of each archetype.
const FiguresPerPlayer = 5

// DefaultWinScore is the kill count that ends the game.
const DefaultWinScore = 4

// Options tunes a single game. The zero value selects the standard
// ruleset.
type Options struct {
	Terrain  []board.Position // nil means the standard two cells
	WinScore int              // 0 means DefaultWinScore
}

func (o Options) withDefaults() Options {
	if o.Terrain == nil {
		o.Terrain = board.DefaultTerrain()
	}
	if o.WinScore <= 0 {
		o.WinScore = DefaultWinScore
	}
	return o
}

// crewGameState is the internal state of one game. The figures map is
// the arena owning every figure record, alive or dead; the board holds
// only IDs into it. A figure's Position field and its board slot are
// two views of the same fact and are only ever updated together via
// the helpers below.
type crewGameState struct {
	gameID   string
	winScore int

	board     *board.Board
	figures   map[string]*Figure
	alive     []string // IDs in placement order
	deadPools map[rules.Player][]string
	scores    map[rules.Player]int
	bombUsed  map[rules.Player]bool

	turns *rules.TurnTracker
	bus   *rules.EventBus

	mu sync.RWMutex
}

func newCrewGameState(gameID string, opts Options) *crewGameState {
	opts = opts.withDefaults()
	return &crewGameState{
		gameID:   gameID,
		winScore: opts.WinScore,
		board:    board.New(opts.Terrain),
		figures:  make(map[string]*Figure, 2*FiguresPerPlayer),
		deadPools: map[rules.Player][]string{
			rules.PlayerOne: {},
			rules.PlayerTwo: {},
		},
		scores: map[rules.Player]int{
			rules.PlayerOne: 0,
			rules.PlayerTwo: 0,
		},
		bombUsed: map[rules.Player]bool{
			rules.PlayerOne: false,
			rules.PlayerTwo: false,
		},
		turns: rules.NewTurnTracker(),
		bus:   rules.NewEventBus(),
	}
}

// inStartZone reports whether the cell lies in the player's start zone:
// rows 0–1 for player one, rows 6–7 for player two.
func inStartZone(p rules.Player, pos board.Position) bool {
	if !pos.Valid() {
		return false
	}
	switch p {
	case rules.PlayerOne:
		return pos.Row < 2
	case rules.PlayerTwo:
		return pos.Row >= board.Size-2
	default:
		return false
	}
}

// figure resolves a figure reference defensively.
func (s *crewGameState) figure(id string) (*Figure, bool) {
	f, ok := s.figures[id]
	return f, ok
}

// figureAt returns the alive figure occupying the cell, if any.
func (s *crewGameState) figureAt(pos board.Position) (*Figure, bool) {
	id, ok := s.board.OccupantAt(pos)
	if !ok {
		return nil, false
	}
	return s.figure(id)
}

// enterBoard puts a figure onto an empty, non-terrain cell, updating
// slot and position as one step.
func (s *crewGameState) enterBoard(f *Figure, pos board.Position) bool {
	if !s.board.Place(f.ID, pos) {
		return false
	}
	f.Position = pos
	return true
}

// leaveBoard removes a figure's board slot and clears its position.
func (s *crewGameState) leaveBoard(f *Figure) {
	s.board.Clear(f.Position)
	f.Position = noPosition
}

// relocate moves a figure between cells, updating slot and position as
// one step. The destination must already be validated.
func (s *crewGameState) relocate(f *Figure, to board.Position) {
	s.board.Clear(f.Position)
	s.board.Place(f.ID, to)
	f.Position = to
}

// aliveCount returns how many of the player's figures are alive.
func (s *crewGameState) aliveCount(p rules.Player) int {
	n := 0
	for _, id := range s.alive {
		if f, ok := s.figures[id]; ok && f.Owner == p {
			n++
		}
	}
	return n
}

// removeAlive drops an ID from the alive list.
func (s *crewGameState) removeAlive(id string) {
	for i, aliveID := range s.alive {
		if aliveID == id {
			s.alive = append(s.alive[:i], s.alive[i+1:]...)
			return
		}
	}
}

// inDeadPool reports whether the ID sits in the player's dead pool.
func (s *crewGameState) inDeadPool(p rules.Player, id string) bool {
	for _, deadID := range s.deadPools[p] {
		if deadID == id {
			return true
		}
	}
	return false
}

// removeFromDeadPool drops an ID from the player's dead pool.
func (s *crewGameState) removeFromDeadPool(p rules.Player, id string) {
	pool := s.deadPools[p]
	for i, deadID := range pool {
		if deadID == id {
			s.deadPools[p] = append(pool[:i], pool[i+1:]...)
			return
		}
	}
}

// setupComplete reports whether both sides have placed a full squad.
func (s *crewGameState) setupComplete() bool {
	return s.aliveCount(rules.PlayerOne) == FiguresPerPlayer &&
		s.aliveCount(rules.PlayerTwo) == FiguresPerPlayer
}

// hasArchetype reports whether the player already fields the archetype.
func (s *crewGameState) hasArchetype(p rules.Player, t Archetype) bool {
	for _, f := range s.figures {
		if f.Owner == p && f.Type == t {
			return true
		}
	}
	return false
}
