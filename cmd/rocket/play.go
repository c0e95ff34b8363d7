package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-rocket/internal/core"
	"github.com/vovakirdan/retro-rocket/internal/games/rocket"
	"github.com/vovakirdan/retro-rocket/internal/platform/tui"
	"github.com/vovakirdan/retro-rocket/internal/registry"
	"github.com/vovakirdan/retro-rocket/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagGame       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Retro Rocket",
	Long: `Start the game at the title screen.

Controls:
  Left/A, Right/D   - Rotate
  Up/W              - Thrust
  Space/F           - Fire
  Enter             - Start
  P/Esc             - Pause
  R                 - Restart (after game over)
  M                 - Back to menu (converts score into credits)
  Q/Ctrl+C          - Quit
  ?                 - Toggle full help

Difficulty options:
  easy   - More lives, fewer meteors
  normal - Values from the config file
  hard   - Fewer lives, faster spawns, full meteor field

Examples:
  rocket play
  rocket play --difficulty easy
  rocket play --config ./my-rocket.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagGame, "game", "rocket", "Registered game to run")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagGame) {
		return fmt.Errorf("unknown game %q, run 'rocket list' to see available games", flagGame)
	}

	// Fail before taking over the terminal.
	if _, err := rocket.LoadConfig(flagConfig, flagDifficulty); err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(flagLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(flagGame, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without a profile.
		logger.Warn("could not open profile database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open profile database: %v\n", err)
	} else {
		defer store.Close()
		if p, ok := game.(registry.Persistent); ok {
			p.UsePersistence(store, logger)
		}
	}

	logger.Info("session started", "game", flagGame, "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	st := game.State()
	logger.Info("session ended", "high", st.HighScore, "credits", st.Credits)
	return nil
}
