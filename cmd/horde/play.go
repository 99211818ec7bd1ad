package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-horde/internal/core"
	"github.com/vovakirdan/tui-horde/internal/games/horde"
	"github.com/vovakirdan/tui-horde/internal/platform/tui"
	"github.com/vovakirdan/tui-horde/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode. Without a mode a launcher asks for
the mode and difficulty.

Controls:
  WASD/Arrows  - Move
  Mouse        - Aim
  Click/Space  - Attack (melee when the pointer is close, shot otherwise)
  P/Esc        - Pause
  R            - Restart
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower, smaller waves, lighter hits
  normal - Config as written
  hard   - Faster escalation, bigger waves, heavier hits
  fixed  - No escalation, stays at the config's starting wave

Examples:
  horde play
  horde play horde_sandbox
  horde play --difficulty hard
  horde play --config ./my-horde.yaml --log-file horde.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]

		// Check if game exists
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown mode %q (run 'horde list' to see available modes)", gameID)
		}
	}

	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := effectiveConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if gameID == "" {
		sel, err := tui.RunLauncher(width, height, preset)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if sel == nil {
			return nil
		}
		gameID = sel.Mode
		if sel.Difficulty != preset {
			preset = sel.Difficulty
			logger.Debug("difficulty chosen in launcher", "difficulty", preset)
		}
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	horde.SetConfigPath(flagConfig)
	horde.SetDifficultyPreset(preset)
	horde.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	opts := tui.Options{
		HoldTicks: cfg.Input.HoldTicks,
		Mouse:     cfg.Input.Mouse,
		Logger:    logger,
	}
	if err := tui.Run(game, runtime, opts); err != nil {
		logger.Error("run failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
