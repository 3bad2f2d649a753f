package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
	"github.com/vovakirdan/mazechase/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round on the default maze.

Controls:
  8 4 5 6    - Seeker (numeric keypad)
  W A S D    - Pursuer 1
  I J K L    - Pursuer 2
  Arrows     - Pursuer 3
  E          - Open the editor (E or Esc cancels, Enter saves)
  Z X C V    - Editor tools: wall, empty, common, special
  N / M      - Clear walls / clear collectibles
  Mouse      - Click or drag to paint while editing
  P          - Pause
  R          - Restart on the current maze
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Longer vulnerability, slower pursuers
  normal - Default tuning, pursuers speed up with the score
  hard   - Shorter vulnerability, faster pursuers
  fixed  - No progression, stays at config's initial level

Examples:
  mazechase play
  mazechase play --difficulty easy
  mazechase play --config ./my-maze.yaml --log ./mazechase.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	// Fail early on a broken custom config
	if flagConfig != "" {
		if _, err := config.LoadMaze(flagConfig); err != nil {
			return err
		}
	}
	mazechase.SetConfigPath(flagConfig)
	mazechase.SetDifficultyPreset(flagDifficulty)

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(mazechase.GameID)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// openLogger returns the logger selected by --log and --verbose and a
// function that closes its file.
func openLogger() (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	if flagLogPath == "" {
		return tui.NewLogger(io.Discard, level), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return tui.NewLogger(f, level), func() { _ = f.Close() }, nil
}
