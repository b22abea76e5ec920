package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/models"
)

func setupApp(t *testing.T) *App {
	t.Helper()
	a := NewApp(models.DefaultSettings())
	editor := setupEditor(t)
	a.editor = editor
	a.state = editorView
	return a
}

func TestCtrlCQuitsAfterSaving(t *testing.T) {
	a := setupApp(t)
	a.editor.Update(key("p"))

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c command is not quit")
	}

	got, err := files.ReadScript("demo")
	if err != nil {
		t.Fatalf("ReadScript failed: %v", err)
	}
	if len(got.Pairs) != 2 {
		t.Errorf("persisted rows = %d, want 2", len(got.Pairs))
	}
}

func TestCtrlCSurfacesFailedSave(t *testing.T) {
	a := setupApp(t)
	a.editor.Update(key("p"))

	// Break the save target so the final write fails.
	full := filepath.Join(files.StorybeatDir, files.ScriptsDir, a.editor.name+".yaml")
	if err := os.Remove(full); err != nil {
		t.Fatalf("remove script: %v", err)
	}
	if err := os.MkdirAll(full, 0755); err != nil {
		t.Fatalf("block script path: %v", err)
	}

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil {
		t.Fatalf("ctrl+c quit despite a failed save")
	}
	if a.statusMsg == "" {
		t.Errorf("failed save not surfaced in the status line")
	}

	// A second ctrl+c discards the edits and quits.
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("second ctrl+c did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("second ctrl+c command is not quit")
	}
}
