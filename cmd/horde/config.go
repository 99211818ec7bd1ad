package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-horde/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a session would use as YAML: the first config
found on the search path with the difficulty preset applied.

Search order:
  --config <path>
  ~/.horde/configs/horde.yaml
  ./configs/horde.yaml
  built-in defaults

With --defaults the built-in file is printed as shipped, comments included.

Examples:
  horde config --defaults > ~/.horde/configs/horde.yaml
  horde config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addConfigFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	return writeConfig(cmd.OutOrStdout(), flagDefaults)
}

// writeConfig writes either the shipped defaults or the effective config.
func writeConfig(w io.Writer, defaults bool) error {
	out := config.GetDefaultYAML("horde")
	if !defaults {
		cfg, _, err := effectiveConfig()
		if err != nil {
			return err
		}
		if out, err = config.Marshal(cfg); err != nil {
			return err
		}
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
