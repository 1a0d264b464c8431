package game

import (
	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/counters"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
)

// GameView is a deep-copied snapshot of one game, safe to hand to
// external adapters: mutating it never touches engine state.
type GameView struct {
	GameID       string
	Phase        rules.Phase
	TurnNumber   int
	ActivePlayer rules.Player
	Winner       rules.Player // PlayerNone until the game is over
	WinScore     int
	Scores       map[rules.Player]int
	BombUsed     map[rules.Player]bool
	Terrain      []board.Position
	Figures      []FigureView // alive figures in placement order
	DeadPools    map[rules.Player][]FigureView
}

// FigureView is a snapshot of one figure.
type FigureView struct {
	ID          string
	Type        Archetype
	Owner       rules.Player
	Position    board.Position // undefined while dead
	Life        int
	MaxLife     int
	MoveRange   int
	AttackPower int
	Reach       int
	HasMoved    bool
	HasActed    bool
	Containment int
	Dead        bool
}

func figureView(f *Figure) FigureView {
	return FigureView{
		ID:          f.ID,
		Type:        f.Type,
		Owner:       f.Owner,
		Position:    f.Position,
		Life:        f.Life,
		MaxLife:     f.MaxLife(),
		MoveRange:   f.MoveRange(),
		AttackPower: f.AttackPower(),
		Reach:       f.Reach(),
		HasMoved:    f.HasMoved,
		HasActed:    f.HasActed,
		Containment: f.Counters.GetCount(counters.Containment),
		Dead:        f.Dead,
	}
}

// GameView returns a snapshot of the game.
func (e *CrewEngine) GameView(gameID string) (GameView, error) {
	s, err := e.game(gameID)
	if err != nil {
		return GameView{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	view := GameView{
		GameID:       s.gameID,
		Phase:        s.turns.Phase(),
		TurnNumber:   s.turns.TurnNumber(),
		ActivePlayer: s.turns.ActivePlayer(),
		WinScore:     s.winScore,
		Scores:       make(map[rules.Player]int, 2),
		BombUsed:     make(map[rules.Player]bool, 2),
		Terrain:      s.board.Terrain(),
		Figures:      make([]FigureView, 0, len(s.alive)),
		DeadPools:    make(map[rules.Player][]FigureView, 2),
	}
	if winner, ok := s.turns.Winner(); ok {
		view.Winner = winner
	}
	for _, p := range rules.Players() {
		view.Scores[p] = s.scores[p]
		view.BombUsed[p] = s.bombUsed[p]
		pool := make([]FigureView, 0, len(s.deadPools[p]))
		for _, id := range s.deadPools[p] {
			pool = append(pool, figureView(s.figures[id]))
		}
		view.DeadPools[p] = pool
	}
	for _, id := range s.alive {
		view.Figures = append(view.Figures, figureView(s.figures[id]))
	}
	return view, nil
}

// FigureAt returns a snapshot of the alive figure occupying the cell.
func (e *CrewEngine) FigureAt(gameID string, pos board.Position) (FigureView, bool, error) {
	s, err := e.game(gameID)
	if err != nil {
		return FigureView{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.figureAt(pos)
	if !ok {
		return FigureView{}, false, nil
	}
	return figureView(f), true, nil
}

// IsTerrain reports whether the cell is terrain.
func (e *CrewEngine) IsTerrain(gameID string, pos board.Position) (bool, error) {
	s, err := e.game(gameID)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.board.IsTerrain(pos), nil
}
