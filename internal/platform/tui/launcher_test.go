package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-horde/internal/config"
	"github.com/vovakirdan/tui-horde/internal/registry"
)

func pressLauncher(m LauncherModel, msgs ...tea.KeyMsg) (LauncherModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(LauncherModel)
	}
	return m, cmd
}

func launcherWithModes() LauncherModel {
	m := NewLauncherModel(80, 24, config.DifficultyNormal)
	m.modes = []registry.GameInfo{
		{ID: "horde", Title: "Horde"},
		{ID: "horde_sandbox", Title: "Horde (Sandbox)"},
	}
	return m
}

func TestLauncherSelectsModeAndDifficulty(t *testing.T) {
	m := launcherWithModes()
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	m, _ = pressLauncher(m, down, enter)
	if !m.inDiffStage {
		t.Fatal("enter on a mode should open the difficulty stage")
	}
	view := m.View()
	if !strings.Contains(view, "Horde (Sandbox)") {
		t.Error("difficulty stage should name the chosen mode")
	}
	if !strings.Contains(view, "fixed (no escalation)") {
		t.Error("difficulty stage should label the fixed preset")
	}

	// Cursor starts on normal; one down is hard.
	m, cmd := pressLauncher(m, down, enter)
	if cmd == nil {
		t.Fatal("expected quit after choosing a difficulty")
	}

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Mode != "horde_sandbox" || sel.Difficulty != config.DifficultyHard {
		t.Errorf("selection = %+v", *sel)
	}
}

func TestLauncherBackAndQuit(t *testing.T) {
	m := launcherWithModes()
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m, _ = pressLauncher(m, enter, esc)
	if m.inDiffStage {
		t.Error("esc should return to the mode stage")
	}

	m, cmd := pressLauncher(m, esc)
	if cmd == nil || m.Selected() != nil {
		t.Error("esc on the mode stage should quit without a selection")
	}

	q, _ := pressLauncher(launcherWithModes(), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if q.Selected() != nil || q.View() != "" {
		t.Error("q should quit without a selection")
	}
}

func TestLauncherCursorBounds(t *testing.T) {
	m := launcherWithModes()
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m, _ = pressLauncher(m, up, up)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	m, _ = pressLauncher(m, down, down, down)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected 1", m.cursor)
	}
}
