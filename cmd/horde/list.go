package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-horde/internal/config"
	"github.com/vovakirdan/tui-horde/internal/registry"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode and the accepted difficulty presets.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println(headerStyle.Render("Available modes:"))
	fmt.Println()

	idWidth := len("ID")
	for _, m := range modes {
		idWidth = max(idWidth, len(m.ID))
	}

	fmt.Printf("  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Printf("  %s  %s\n", strings.Repeat("-", idWidth), "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", idWidth, m.ID, m.Title)
	}

	names := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		names[i] = p.Label()
	}

	fmt.Println()
	fmt.Printf("Difficulties: %s\n", strings.Join(names, ", "))
	fmt.Println("Run 'horde play <id>' to play a mode.")
}
