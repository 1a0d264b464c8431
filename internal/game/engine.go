package game

import (
	"fmt"
	"sync"

	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

// CrewEngine validates and applies every action of the tactical board
// game. It manages any number of independent games; each game is a
// single-writer resource guarded by its own lock, so concurrent
// callers of one game are serialized while distinct games resolve
// independently.
type CrewEngine struct {
	logger *zap.Logger

	mu    sync.RWMutex
	games map[string]*crewGameState
}

// NewCrewEngine creates a new engine.
func NewCrewEngine(logger *zap.Logger) *CrewEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CrewEngine{
		logger: logger,
		games:  make(map[string]*crewGameState),
	}
}

// StartGame registers a new game in the setup phase with the standard
// ruleset.
func (e *CrewEngine) StartGame(gameID string) error {
	return e.StartGameWithOptions(gameID, Options{})
}

// StartGameWithOptions registers a new game with tuned terrain or win
// score.
func (e *CrewEngine) StartGameWithOptions(gameID string, opts Options) error {
	if gameID == "" {
		return fmt.Errorf("game ID must not be empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.games[gameID]; exists {
		return fmt.Errorf("game %s already exists", gameID)
	}
	e.games[gameID] = newCrewGameState(gameID, opts)

	e.logger.Info("game created",
		zap.String("game_id", gameID),
	)
	return nil
}

// EndGame removes the game state.
func (e *CrewEngine) EndGame(gameID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.games[gameID]; !ok {
		return fmt.Errorf("game %s not found", gameID)
	}
	delete(e.games, gameID)

	e.logger.Info("game removed", zap.String("game_id", gameID))
	return nil
}

func (e *CrewEngine) game(gameID string) (*crewGameState, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s, ok := e.games[gameID]
	if !ok {
		return nil, fmt.Errorf("game %s not found", gameID)
	}
	return s, nil
}

// Subscribe registers a listener for the game's resolution events and
// returns a handle for Unsubscribe. Listeners run synchronously during
// resolution and must not call back into the engine.
func (e *CrewEngine) Subscribe(gameID string, listener rules.Listener) (int, error) {
	s, err := e.game(gameID)
	if err != nil {
		return 0, err
	}
	return s.bus.Subscribe(listener), nil
}

// Unsubscribe removes a previously registered listener.
func (e *CrewEngine) Unsubscribe(gameID string, handle int) error {
	s, err := e.game(gameID)
	if err != nil {
		return err
	}
	s.bus.Unsubscribe(handle)
	return nil
}

// PlaceFigure creates a figure of the given archetype for the player
// and puts it on the board during setup. On success it returns the new
// figure's ID; once both sides field a full squad the game flips into
// play.
func (e *CrewEngine) PlaceFigure(gameID string, t Archetype, owner rules.Player, pos board.Position) (string, rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return "", rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, res := s.placeFigure(t, owner, pos)
	e.logAction("place_figure", gameID, id, res)
	return id, res, nil
}

// Move moves a figure to a destination cell.
func (e *CrewEngine) Move(gameID, figureID string, to board.Position) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.move(figureID, to)
	e.logAction("move", gameID, figureID, res)
	return res, nil
}

// Attack performs a basic attack against the figure at the target cell.
func (e *CrewEngine) Attack(gameID, figureID string, target board.Position) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.attack(figureID, target)
	e.logAction("attack", gameID, figureID, res)
	return res, nil
}

// Charge performs the knight's charge along a cardinal direction.
func (e *CrewEngine) Charge(gameID, figureID string, dir board.Direction) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.charge(figureID, dir)
	e.logAction("charge", gameID, figureID, res)
	return res, nil
}

// LongEye performs the arbalist's ranged snipe along any of the eight
// directions.
func (e *CrewEngine) LongEye(gameID, figureID string, dir board.Direction) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.longEye(figureID, dir)
	e.logAction("long_eye", gameID, figureID, res)
	return res, nil
}

// MagicBomb performs the black mage's one-shot area burst centered on
// the target cell.
func (e *CrewEngine) MagicBomb(gameID, casterID string, target board.Position) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.magicBomb(casterID, target)
	e.logAction("magic_bomb", gameID, casterID, res)
	return res, nil
}

// Plague performs the black mage's self-sacrifice strike: the caster
// takes cost damage, the target takes cost+1.
func (e *CrewEngine) Plague(gameID, casterID, targetID string, cost int) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.plague(casterID, targetID, cost)
	e.logAction("plague", gameID, casterID, res)
	return res, nil
}

// VampiricPush revives a figure from the caster's dead pool into the
// caster's start zone at the price of 1 self-damage.
func (e *CrewEngine) VampiricPush(gameID, casterID, deadFigureID string, pos board.Position) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.vampiricPush(casterID, deadFigureID, pos)
	e.logAction("vampiric_push", gameID, casterID, res)
	return res, nil
}

// Conjure flips a weakened enemy figure to the caster's side.
func (e *CrewEngine) Conjure(gameID, casterID, targetID string) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.conjure(casterID, targetID)
	e.logAction("conjure", gameID, casterID, res)
	return res, nil
}

// Heal restores up to 3 life to a figure within reach.
func (e *CrewEngine) Heal(gameID, casterID, targetID string) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.heal(casterID, targetID)
	e.logAction("heal", gameID, casterID, res)
	return res, nil
}

// CounterContainment locks an enemy figure out of all actions for two
// turns.
func (e *CrewEngine) CounterContainment(gameID, casterID, targetID string) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.counterContainment(casterID, targetID)
	e.logAction("counter_containment", gameID, casterID, res)
	return res, nil
}

// EndTurn ends the active player's turn and evaluates win conditions.
func (e *CrewEngine) EndTurn(gameID string) (rules.Result, error) {
	s, err := e.game(gameID)
	if err != nil {
		return rules.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.endTurn()
	e.logAction("end_turn", gameID, "", res)
	return res, nil
}

func (e *CrewEngine) logAction(action, gameID, figureID string, res rules.Result) {
	fields := []zap.Field{
		zap.String("game_id", gameID),
		zap.String("action", action),
		zap.String("code", string(res.Code)),
		zap.String("reason", res.Reason),
	}
	if figureID != "" {
		fields = append(fields, zap.String("figure_id", figureID))
	}
	if res.OK {
		e.logger.Info("action resolved", fields...)
	} else {
		e.logger.Debug("action denied", fields...)
	}
}
