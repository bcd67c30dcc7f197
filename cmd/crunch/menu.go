package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crunch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive list",
	Long: `Start crunch in menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
Quitting a level returns to the list.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Play level
  Q/Esc        - Quit

Examples:
  crunch menu
  crunch menu --levels ./my-levels
  crunch menu --seed 7`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.applyDifficulty(); err != nil {
		return err
	}

	lvls, err := a.loader.LoadAll()
	if err != nil {
		return err
	}
	theme, err := a.theme()
	if err != nil {
		return err
	}

	current := a.cfg.Board.Level
	for {
		width, height := terminalSize()
		selected, err := tui.RunLevelPicker(lvls, current, theme, width, height)
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		current = selected.ID

		if _, err := a.play(*selected, theme, runtimeConfig(a.cfg)); err != nil {
			return err
		}
	}
}
