// crunch is a match-3 puzzle board for the terminal.
//
// Usage:
//
//	crunch levels              - List available levels
//	crunch play [level]        - Play a level
//	crunch menu                - Pick levels interactively
//	crunch check [level...]    - Shuffle levels headlessly and report possible swaps
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Use a custom config YAML
//	--levels <dir>      - Load levels from a directory instead of the built-in pack
//	--log-level <lvl>   - Override the configured log level
//	--log-file <path>   - Write logs to a file while the board is on screen
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crunch/internal/config"
	"github.com/vovakirdan/crunch/internal/match3/levels"
	"github.com/vovakirdan/crunch/internal/platform/tui"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crunch",
	Short: "Crunch - a match-3 board in your terminal",
	Long: `Crunch fills a shaped board with pieces so that no runs of three exist
and at least one swap makes one, then lets you play it.

Available commands:
  levels   - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  check    - Shuffle levels without a terminal UI

Examples:
  crunch levels
  crunch play Level_2
  crunch play --difficulty easy
  crunch menu --levels ./my-levels
  crunch check --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file during play")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
}

// app bundles what every command needs.
type app struct {
	cfg     config.CrunchConfig
	logger  *log.Logger
	loader  *levels.Loader
	closeFn func()
}

// setup loads the config and builds the logger and level loader.
// With interactive set, logs go to --log-file or are discarded so they
// do not tear the alt screen.
func setup(interactive bool) (*app, error) {
	cfg, err := config.LoadCrunch(flagConfig)
	if err != nil {
		return nil, err
	}

	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	} else if interactive {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "crunch",
		Level:           level,
	})

	loader := levels.Embedded()
	if flagLevelsDir != "" {
		loader = levels.NewDirLoader(flagLevelsDir)
	}
	loader.OnSkip = func(path string, err error) {
		logger.Warn("skipping level file", "path", path, "err", err)
	}

	return &app{cfg: cfg, logger: logger, loader: loader, closeFn: closeFn}, nil
}

func (a *app) close() {
	a.closeFn()
}

func (a *app) theme() (tui.Theme, error) {
	return tui.ThemeByName(a.cfg.Display.Theme)
}
