package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crunch/internal/config"
	"github.com/vovakirdan/crunch/internal/core"
	"github.com/vovakirdan/crunch/internal/games/crunch"
	"github.com/vovakirdan/crunch/internal/match3/levels"
	"github.com/vovakirdan/crunch/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Shuffle the given level (or the configured default) and play it.

Controls:
  Arrows/hjkl   - Move cursor (swap when a piece is selected)
  Enter/Space   - Select piece / swap with selection
  S             - Shuffle
  I             - Hint
  R             - Restart with a new board
  P/Esc         - Pause
  ?             - Toggle help
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - 4 piece types
  normal - 5 piece types
  hard   - 6 piece types, more shuffle attempts

Examples:
  crunch play
  crunch play Level_3
  crunch play Level_1 --difficulty easy
  crunch play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.applyDifficulty(); err != nil {
		return err
	}

	id := a.cfg.Board.Level
	if len(args) > 0 {
		id = args[0]
	}
	level, err := a.loader.LoadByID(id)
	if err != nil {
		return fmt.Errorf("%w\nRun 'crunch levels' to see available levels", err)
	}

	theme, err := a.theme()
	if err != nil {
		return err
	}

	state, err := a.play(level, theme, runtimeConfig(a.cfg))
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d moves, %d shuffles\n", level.Name, state.Moves, state.Shuffles)
	return nil
}

// applyDifficulty overrides the piece count when --difficulty is given.
func (a *app) applyDifficulty() error {
	if flagDifficulty == "" {
		return nil
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyDifficultyPreset(&a.cfg, preset)
	a.logger.Debug("difficulty preset", "preset", preset, "piece_types", a.cfg.Board.PieceTypes)
	return nil
}

// play runs one level until the user quits.
func (a *app) play(level levels.Level, theme tui.Theme, rc core.RuntimeConfig) (core.GameState, error) {
	a.logger.Info("starting level", "id", level.ID, "seed", rc.Seed, "piece_types", a.cfg.Board.PieceTypes)

	game := crunch.New(level, a.cfg)
	game.SetLogger(a.logger)

	state, err := tui.Run(game, theme, rc)
	if err != nil {
		return state, fmt.Errorf("error running game: %w", err)
	}
	if game.NoMoves() {
		a.logger.Warn("level ended without a playable board", "id", level.ID, "err", game.Err())
	}
	return state, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig(cfg config.CrunchConfig) core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
	}
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
