package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/core"
	"github.com/vovakirdan/bug-to-feature/internal/games/bugfeature"
	"github.com/vovakirdan/bug-to-feature/internal/platform/gui"
	"github.com/vovakirdan/bug-to-feature/internal/platform/tui"
	"github.com/vovakirdan/bug-to-feature/internal/sound"
	"github.com/vovakirdan/bug-to-feature/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGUI        bool
	flagSound      bool
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bug to Feature",
	Long: `Start a game in the terminal, or in a desktop window with --gui.

Controls (arcade cabinet layout):
  A/D, Left/Right  - Move / choose branch
  U, Space         - Shoot
  J                - Launch production rocket (needs 5 features)
  Enter, 1         - Start
  R                - Restart (after game over)
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, shorter weapon cooldown
  normal - Default rules
  hard   - 2 lives, longer weapon cooldown
  fixed  - No level progression

Examples:
  bugfeature play
  bugfeature play --difficulty hard
  bugfeature play --gui --sound
  bugfeature play --config ./my-bugfeature.yaml --log ./bugfeature.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects on the local audio device")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Report a broken --config now rather than silently using defaults
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	bugfeature.SetConfigPath(flagConfig)
	if err := bugfeature.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := sound.Open(flagSound, logger)
	defer player.Close()

	game := bugfeature.New()
	if flagGUI {
		return gui.Run(game, store, cfg,
			gui.WithSound(player),
			gui.WithLogger(logger),
			gui.WithPlayer(playerName()),
		)
	}

	if err := tui.Run(game, store, cfg,
		tui.WithSound(player),
		tui.WithLogger(logger),
		tui.WithPlayer(playerName()),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogger returns a debug logger writing to path, or a discarding one
// when path is empty. The terminal UI owns stdout, so logs never go there.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bugfeature",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
