// Command motley runs the Motley Crew tactical board game in the
// terminal. It is a thin adapter: the placement wizard, board renderer
// and input loop only translate text I/O into engine API calls.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/motleycrew/motley-engine-go/internal/config"
	"github.com/motleycrew/motley-engine-go/internal/game"
	"github.com/motleycrew/motley-engine-go/internal/game/board"
	"github.com/motleycrew/motley-engine-go/internal/game/rules"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting motley",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	engine := game.NewCrewEngine(logger)
	gameID := uuid.NewString()

	terrain := make([]board.Position, 0, len(cfg.Game.Terrain))
	for _, cell := range cfg.Game.Terrain {
		terrain = append(terrain, board.Position{Row: cell.Row, Col: cell.Col})
	}
	opts := game.Options{Terrain: terrain, WinScore: cfg.Game.WinScore}
	if err := engine.StartGameWithOptions(gameID, opts); err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}

	cli := &cli{
		engine: engine,
		gameID: gameID,
		in:     bufio.NewScanner(os.Stdin),
	}
	cli.run()
}

// initLogger initializes the zap logger based on configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// Keep the interactive board readable; engine logs go to stderr.
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

type cli struct {
	engine *game.CrewEngine
	gameID string
	in     *bufio.Scanner
}

func (c *cli) run() {
	fmt.Println("=== MOTLEY CREW - TACTICAL BOARD GAME ===")
	c.setup()

	for {
		view := c.view()
		if view.Phase == rules.PhaseGameOver {
			break
		}
		c.render(view)
		c.listFigures(view)
		fmt.Printf("\n=== %s's Turn ===\n", view.ActivePlayer)

		if c.playTurn(view.ActivePlayer) {
			continue
		}
		break
	}

	view := c.view()
	fmt.Println("\n=== GAME OVER ===")
	fmt.Printf("Winner: %s\n", view.Winner)
	fmt.Printf("Final Scores - P1: %d, P2: %d\n", view.Scores[rules.PlayerOne], view.Scores[rules.PlayerTwo])
}

// setup walks both players through placing their five figures.
func (c *cli) setup() {
	fmt.Println("Game Setup - Each player places their 5 figures")
	fmt.Println("Player 1 uses rows 0-1, Player 2 uses rows 6-7")
	fmt.Println("Terrain cells are marked XX")

	for _, p := range rules.Players() {
		fmt.Printf("\n%s - Place your figures in your start zone\n", p)
		for _, t := range game.Archetypes() {
			for {
				c.render(c.view())
				fmt.Printf("\nPlace your %s\n", t)
				pos, ok := c.promptPosition("")
				if !ok {
					continue
				}
				_, res, err := c.engine.PlaceFigure(c.gameID, t, p, pos)
				if err != nil {
					fmt.Println(err)
					continue
				}
				fmt.Println(res.Reason)
				if res.OK {
					break
				}
			}
		}
	}
	fmt.Println("\n=== Setup complete! Game begins ===")
}

// playTurn processes actions until the player ends the turn. It
// returns false when the game should stop.
func (c *cli) playTurn(active rules.Player) bool {
	for {
		fmt.Println("\nActions: move, attack, special, end, quit")
		switch c.prompt("Choose action: ") {
		case "end":
			if res, err := c.engine.EndTurn(c.gameID); err != nil {
				fmt.Println(err)
			} else {
				fmt.Println(res.Reason)
			}
			return true
		case "move":
			c.handleMove(active)
		case "attack":
			c.handleAttack(active)
		case "special":
			c.handleSpecial(active)
		case "quit":
			return false
		default:
			fmt.Println("Invalid action")
		}
	}
}

func (c *cli) handleMove(active rules.Player) {
	fig, ok := c.promptFigure(active)
	if !ok {
		return
	}
	to, ok := c.promptPosition("Move to ")
	if !ok {
		return
	}
	c.report(c.engine.Move(c.gameID, fig.ID, to))
}

func (c *cli) handleAttack(active rules.Player) {
	fig, ok := c.promptFigure(active)
	if !ok {
		return
	}
	target, ok := c.promptPosition("Target ")
	if !ok {
		return
	}
	c.report(c.engine.Attack(c.gameID, fig.ID, target))
}

func (c *cli) handleSpecial(active rules.Player) {
	fig, ok := c.promptFigure(active)
	if !ok {
		return
	}

	switch fig.Type {
	case game.ArchetypeKnight:
		dir, ok := board.ParseDirection(c.prompt("Charge direction (up/down/left/right): "))
		if !ok {
			fmt.Println("Invalid direction")
			return
		}
		c.report(c.engine.Charge(c.gameID, fig.ID, dir))

	case game.ArchetypeArbalist:
		dir, ok := board.ParseDirection(c.prompt("Long Eye direction (8 directions): "))
		if !ok {
			fmt.Println("Invalid direction")
			return
		}
		c.report(c.engine.LongEye(c.gameID, fig.ID, dir))

	case game.ArchetypeBlackMage:
		fmt.Println("Spells: 1) Magic Bomb, 2) Plague, 3) Vampiric Push")
		switch c.prompt("Choose spell (1-3): ") {
		case "1":
			target, ok := c.promptPosition("Bomb target ")
			if !ok {
				return
			}
			c.report(c.engine.MagicBomb(c.gameID, fig.ID, target))
		case "2":
			target, ok := c.promptTarget()
			if !ok {
				return
			}
			cost, ok := c.promptInt("Sacrifice life: ")
			if !ok {
				return
			}
			c.report(c.engine.Plague(c.gameID, fig.ID, target.ID, cost))
		case "3":
			dead, ok := c.promptDeadFigure(active)
			if !ok {
				return
			}
			pos, ok := c.promptPosition("Revive at ")
			if !ok {
				return
			}
			c.report(c.engine.VampiricPush(c.gameID, fig.ID, dead.ID, pos))
		default:
			fmt.Println("Invalid spell")
		}

	case game.ArchetypeWhiteMage:
		fmt.Println("Spells: 1) Conjure, 2) Heal, 3) Counter Containment")
		spell := c.prompt("Choose spell (1-3): ")
		target, ok := c.promptTarget()
		if !ok {
			return
		}
		switch spell {
		case "1":
			c.report(c.engine.Conjure(c.gameID, fig.ID, target.ID))
		case "2":
			c.report(c.engine.Heal(c.gameID, fig.ID, target.ID))
		case "3":
			c.report(c.engine.CounterContainment(c.gameID, fig.ID, target.ID))
		default:
			fmt.Println("Invalid spell")
		}

	case game.ArchetypeBarbarian:
		fmt.Println("Barbarian has no special actions, only basic attacks")
	}
}

func (c *cli) report(res rules.Result, err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Reason)
}

func (c *cli) view() game.GameView {
	view, err := c.engine.GameView(c.gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read game state: %v\n", err)
		os.Exit(1)
	}
	return view
}

// render draws the board from a game view snapshot.
func (c *cli) render(view game.GameView) {
	terrain := make(map[board.Position]bool, len(view.Terrain))
	for _, p := range view.Terrain {
		terrain[p] = true
	}
	occupants := make(map[board.Position]game.FigureView, len(view.Figures))
	for _, f := range view.Figures {
		occupants[f.Position] = f
	}

	fmt.Println("\n  0   1   2   3   4   5   6   7")
	for row := 0; row < board.Size; row++ {
		fmt.Printf("%d ", row)
		for col := 0; col < board.Size; col++ {
			pos := board.Position{Row: row, Col: col}
			switch {
			case terrain[pos]:
				fmt.Print("XX ")
			case occupants[pos].ID != "":
				f := occupants[pos]
				fmt.Printf("%s%d ", f.Type.Abbrev(), int(f.Owner))
			default:
				fmt.Print("... ")
			}
		}
		fmt.Println()
	}

	fmt.Printf("\nScores - P1: %d, P2: %d\n", view.Scores[rules.PlayerOne], view.Scores[rules.PlayerTwo])
	fmt.Printf("Current Player: %s\n", view.ActivePlayer)
	for _, p := range rules.Players() {
		if view.BombUsed[p] {
			fmt.Printf("%s has used Magic Bomb\n", p)
		}
	}
}

func (c *cli) listFigures(view game.GameView) {
	fmt.Println("\n--- Active Figures ---")
	for _, p := range rules.Players() {
		fmt.Printf("%s:\n", p)
		for _, f := range view.Figures {
			if f.Owner != p {
				continue
			}
			var status []string
			if f.HasMoved {
				status = append(status, "moved")
			}
			if f.HasActed {
				status = append(status, "acted")
			}
			if f.Containment > 0 {
				status = append(status, fmt.Sprintf("contained(%d)", f.Containment))
			}
			suffix := ""
			if len(status) > 0 {
				suffix = " [" + strings.Join(status, ", ") + "]"
			}
			fmt.Printf("  %s [%d/%d]%s at %s\n", f.Type, f.Life, f.MaxLife, suffix, f.Position)
		}
		if pool := view.DeadPools[p]; len(pool) > 0 {
			fmt.Printf("%s dead figures:\n", p)
			for _, f := range pool {
				fmt.Printf("  %s\n", f.Type)
			}
		}
	}
}

func (c *cli) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		os.Exit(0)
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text()))
}

func (c *cli) promptInt(label string) (int, bool) {
	n, err := strconv.Atoi(c.prompt(label))
	if err != nil {
		fmt.Println("Invalid input. Enter a number.")
		return 0, false
	}
	return n, true
}

func (c *cli) promptPosition(prefix string) (board.Position, bool) {
	row, ok := c.promptInt(prefix + "Row (0-7): ")
	if !ok {
		return board.Position{}, false
	}
	col, ok := c.promptInt(prefix + "Col (0-7): ")
	if !ok {
		return board.Position{}, false
	}
	return board.Position{Row: row, Col: col}, true
}

// promptFigure selects one of the active player's figures by position.
func (c *cli) promptFigure(active rules.Player) (game.FigureView, bool) {
	pos, ok := c.promptPosition("Figure ")
	if !ok {
		return game.FigureView{}, false
	}
	fig, found, err := c.engine.FigureAt(c.gameID, pos)
	if err != nil || !found || fig.Owner != active {
		fmt.Println("No valid figure at that position")
		return game.FigureView{}, false
	}
	return fig, true
}

// promptTarget selects any figure on the board by position.
func (c *cli) promptTarget() (game.FigureView, bool) {
	pos, ok := c.promptPosition("Target ")
	if !ok {
		return game.FigureView{}, false
	}
	fig, found, err := c.engine.FigureAt(c.gameID, pos)
	if err != nil || !found {
		fmt.Println("No target at that position")
		return game.FigureView{}, false
	}
	return fig, true
}

// promptDeadFigure selects a figure from the player's dead pool.
func (c *cli) promptDeadFigure(active rules.Player) (game.FigureView, bool) {
	pool := c.view().DeadPools[active]
	if len(pool) == 0 {
		fmt.Println("No dead figures to revive")
		return game.FigureView{}, false
	}
	fmt.Println("Dead figures:")
	for i, f := range pool {
		fmt.Printf("%d: %s\n", i, f.Type)
	}
	idx, ok := c.promptInt("Choose figure to revive: ")
	if !ok || idx < 0 || idx >= len(pool) {
		fmt.Println("Invalid figure selection")
		return game.FigureView{}, false
	}
	return pool[idx], true
}
