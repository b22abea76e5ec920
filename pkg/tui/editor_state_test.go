package tui

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/models"
)

func setupEditor(t *testing.T) *EditorModel {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)

	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	m, err := NewEditorModel("demo", models.DefaultSettings())
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}
	m.SetSize(100, 40)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestEditorCreatesMissingScript(t *testing.T) {
	m := setupEditor(t)

	if len(m.doc.Pairs) != 1 {
		t.Fatalf("fresh script has %d rows, want 1", len(m.doc.Pairs))
	}
	if _, err := files.ReadScript("demo"); err != nil {
		t.Errorf("script not persisted on create: %v", err)
	}
}

func TestInsertPauseKeyMarksDirty(t *testing.T) {
	m := setupEditor(t)

	m.Update(key("p"))
	if len(m.doc.Pairs) != 2 {
		t.Fatalf("rows = %d, want 2 after pause insert", len(m.doc.Pairs))
	}
	if m.doc.Pairs[1].Speech.Kind != models.KindPause {
		t.Errorf("inserted row is %q, want pause", m.doc.Pairs[1].Speech.Kind)
	}
	if !m.dirty {
		t.Errorf("mutation must mark the session dirty")
	}
}

func TestResizeModeStreamsClampedDurations(t *testing.T) {
	m := setupEditor(t)
	m.Update(key("p")) // pause row at index 1
	m.selected = 1

	m.Update(key("r"))
	if m.mode != modeResize {
		t.Fatalf("mode = %v, want resize", m.mode)
	}

	// Shrinking far past the floor pins at the pause minimum.
	for i := 0; i < 10; i++ {
		m.Update(key("-"))
	}
	if got := m.doc.Pairs[1].Speech.DurationSeconds; got != 1 {
		t.Errorf("pause duration = %v, want floor 1", got)
	}
	if !m.doc.Pairs[1].Speech.ManualDuration {
		t.Errorf("resize must pin the duration")
	}

	m.Update(key("esc"))
	if m.mode != modeNormal {
		t.Errorf("esc must leave resize mode")
	}
}

func TestEditSpeechCommitsOnExit(t *testing.T) {
	m := setupEditor(t)

	m.Update(key("enter"))
	if m.mode != modeEditSpeech {
		t.Fatalf("mode = %v, want edit", m.mode)
	}
	if _, ok := m.coord.Editing(); !ok {
		t.Fatalf("coordinator not tracking the edit")
	}

	m.textarea.SetValue("one two three four five")
	m.Update(key("esc"))

	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after exit", m.mode)
	}
	if _, ok := m.coord.Editing(); ok {
		t.Errorf("coordinator still editing after exit")
	}
	if got := m.doc.Pairs[0].Speech.DurationSeconds; got != 2.0 {
		t.Errorf("duration = %v, want committed 2.0", got)
	}
}

func TestPauseRowCannotEnterEditMode(t *testing.T) {
	m := setupEditor(t)
	m.Update(key("p"))
	m.selected = 1

	m.Update(key("enter"))
	if m.mode != modeNormal {
		t.Errorf("pause row entered edit mode")
	}
}

func TestZoomClamps(t *testing.T) {
	m := setupEditor(t)
	for i := 0; i < 20; i++ {
		m.Update(key("+"))
	}
	if m.zoom != 1 {
		t.Errorf("zoom = %v, want clamp at 1", m.zoom)
	}
	for i := 0; i < 20; i++ {
		m.Update(key("-"))
	}
	if m.zoom != 0 {
		t.Errorf("zoom = %v, want clamp at 0", m.zoom)
	}
}

func TestCompactToggle(t *testing.T) {
	m := setupEditor(t)
	m.Update(key("z"))
	if !m.compact {
		t.Fatalf("z did not enter compact mode")
	}
	if m.View() == "" {
		t.Errorf("compact view rendered empty")
	}
	m.Update(key("z"))
	if m.compact {
		t.Errorf("z did not leave compact mode")
	}
}

func TestDeleteClampsSelection(t *testing.T) {
	m := setupEditor(t)
	m.Update(key("p"))
	m.selected = 1

	m.Update(key("x"))
	if len(m.doc.Pairs) != 1 {
		t.Fatalf("rows = %d, want 1 after delete", len(m.doc.Pairs))
	}
	if m.selected != 0 {
		t.Errorf("selection = %d, want clamped 0", m.selected)
	}
}

func TestSaveNowClearsDirty(t *testing.T) {
	m := setupEditor(t)
	m.Update(key("p"))
	if !m.dirty {
		t.Fatalf("expected dirty session")
	}

	if err := m.saveNow(); err != nil {
		t.Fatalf("saveNow failed: %v", err)
	}
	if m.dirty {
		t.Errorf("dirty flag survives save")
	}

	got, err := files.ReadScript("demo")
	if err != nil {
		t.Fatalf("ReadScript failed: %v", err)
	}
	if len(got.Pairs) != 2 {
		t.Errorf("persisted rows = %d, want 2", len(got.Pairs))
	}
}

func TestViewRendersWithoutSize(t *testing.T) {
	m := setupEditor(t)
	m.width = 0
	if m.View() == "" {
		t.Errorf("zero-size view must still render a placeholder")
	}
}
