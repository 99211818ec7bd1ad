// horde is a terminal top-down survival shooter built on a deterministic
// simulation core.
//
// Usage:
//
//	horde list              - List available modes
//	horde play [mode]       - Play a mode (default: horde)
//	horde bench             - Run seeded headless sessions and report
//	horde config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file (play discards logs otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-horde/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Shared by play, bench and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "horde",
	SilenceErrors: true,
	SilenceUsage:  true,
	Short:         "Horde - survive the swarm in your terminal",
	Long: `Horde is a top-down survival shooter for the terminal. Move with WASD,
aim with the mouse and hold off an endless, escalating stream of enemies.

Available commands:
  list     - Show all available modes
  play     - Play a mode
  bench    - Run headless autopilot sessions
  config   - Print the effective configuration

Examples:
  horde play
  horde play horde_sandbox
  horde play --difficulty hard
  horde bench --runs 8 --ticks 36000
  horde config --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}

// addConfigFlags registers the flags that select the effective config.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newLogger builds the process logger. Logs go to --log-file when set and
// to fallback otherwise. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "horde",
		Level:           level,
	})
	return l, closer, nil
}

// effectiveConfig loads the YAML config and applies the difficulty preset.
func effectiveConfig() (config.HordeConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.HordeConfig{}, "", err
	}
	cfg, err := config.LoadHorde(flagConfig)
	if err != nil {
		return config.HordeConfig{}, "", err
	}
	config.ApplyHordePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.HordeConfig{}, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, preset, nil
}
