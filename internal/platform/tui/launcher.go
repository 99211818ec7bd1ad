package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-horde/internal/config"
	"github.com/vovakirdan/tui-horde/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Selection is what the launcher hands back to the CLI.
type Selection struct {
	Mode       string
	Difficulty config.DifficultyPreset
}

type launcherKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultLauncherKeys() launcherKeys {
	return launcherKeys{
		Up:     key.NewBinding(key.WithKeys("up", "w", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "s", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// LauncherModel lets users choose a mode and then a difficulty.
type LauncherModel struct {
	modes       []registry.GameInfo
	cursor      int
	diffCursor  int
	inDiffStage bool
	width       int
	height      int
	keys        launcherKeys
	selection   Selection
	choosing    bool
	quitting    bool
}

// NewLauncherModel creates a launcher over the registered modes. The
// difficulty cursor starts on preset.
func NewLauncherModel(width, height int, preset config.DifficultyPreset) LauncherModel {
	m := LauncherModel{
		modes:    registry.List(),
		width:    width,
		height:   height,
		keys:     defaultLauncherKeys(),
		choosing: true,
	}
	for i, p := range config.Presets {
		if p == preset {
			m.diffCursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m LauncherModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LauncherModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	cursor, n := &m.cursor, len(m.modes)
	if m.inDiffStage {
		cursor, n = &m.diffCursor, len(config.Presets)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if *cursor < n-1 {
			*cursor++
		}
	case key.Matches(msg, m.keys.Back):
		if !m.inDiffStage {
			m.quitting = true
			return m, tea.Quit
		}
		m.inDiffStage = false
	case key.Matches(msg, m.keys.Select):
		if n == 0 {
			return m, nil
		}
		if !m.inDiffStage {
			m.inDiffStage = true
			return m, nil
		}
		m.choosing = false
		m.selection = Selection{
			Mode:       m.modes[m.cursor].ID,
			Difficulty: config.Presets[m.diffCursor],
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the current stage.
func (m LauncherModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.center(titleStyle.Render("H O R D E")))
	b.WriteString("\n\n")

	if m.inDiffStage {
		b.WriteString(m.center(fmt.Sprintf("%s - select difficulty:", m.modes[m.cursor].Title)))
		b.WriteString("\n\n")
		for i, p := range config.Presets {
			b.WriteString(m.center(m.item(p.Label(), i == m.diffCursor)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.center("Select mode:"))
		b.WriteString("\n\n")
		for i, info := range m.modes {
			b.WriteString(m.center(m.item(info.Title, i == m.cursor)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.center(helpStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit")))
	return b.String()
}

func (m LauncherModel) item(label string, selected bool) string {
	if selected {
		return selectedStyle.Render("> " + label)
	}
	return "  " + label
}

func (m LauncherModel) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// Selected returns the selection, or nil if the user quit.
func (m LauncherModel) Selected() *Selection {
	if m.choosing || m.quitting {
		return nil
	}
	sel := m.selection
	return &sel
}

// RunLauncher shows the launcher and returns the selection, or nil when the
// user backs out.
func RunLauncher(width, height int, preset config.DifficultyPreset) (*Selection, error) {
	p := tea.NewProgram(NewLauncherModel(width, height, preset), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: launcher: %w", err)
	}

	m, ok := final.(LauncherModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
