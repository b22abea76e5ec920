package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/storybeat/storybeat-cli/pkg/editmode"
	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/script"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

// editorMode is the input mode of the editor view.
type editorMode int

const (
	modeNormal editorMode = iota
	modeEditSpeech
	modeEditVisual
	modeResize
	modeTitle
	modeTarget
)

// pxPerLine maps the layout engine's pixel space onto terminal lines.
const pxPerLine = 12.0

// resizeStepSeconds is how much one resize keypress changes a duration.
const resizeStepSeconds = 0.5

// EditorModel is the two-track editor for one script. State only; key
// handling lives in editor_update.go and rendering in editor_view.go.
type EditorModel struct {
	name     string
	doc      models.Script
	settings *models.Settings

	mut   script.Mutator
	coord *editmode.Coordinator

	selected int
	mode     editorMode
	zoom     float64
	compact  bool

	textarea textarea.Model
	input    textinput.Model

	width  int
	height int

	dirty   bool
	saveGen int
}

// NewEditorModel opens a script by name, creating it when absent.
func NewEditorModel(name string, settings *models.Settings) (*EditorModel, error) {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	est := timing.Estimator{
		WordsPerMinute:  settings.Timing.WordsPerMinute,
		MinTextSeconds:  settings.Timing.MinTextSeconds,
		MinPauseSeconds: settings.Timing.MinPauseSeconds,
	}
	mut := script.NewMutator(est)
	if settings.Timing.DefaultPauseSecs > 0 {
		mut.DefaultPause = settings.Timing.DefaultPauseSecs
	}

	var doc models.Script
	loaded, err := files.ReadScript(name)
	switch {
	case err == nil:
		doc = *loaded
	case errors.Is(err, files.ErrNotFound):
		doc = mut.New(name)
		if err := files.WriteScript(name, doc); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	doc.Name = name

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0

	ti := textinput.New()
	ti.CharLimit = 0

	return &EditorModel{
		name:     name,
		doc:      doc,
		settings: settings,
		mut:      mut,
		coord:    editmode.New(mut),
		textarea: ta,
		input:    ti,
	}, nil
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.textarea.SetWidth(m.columnWidth() - 2)
	m.input.Width = m.columnWidth() - 2
}

// columnWidth is the outer width of one track column.
func (m *EditorModel) columnWidth() int {
	w := (m.width - 4) / 2
	if w < 20 {
		w = 20
	}
	return w
}

// selectedPair returns the currently selected row.
func (m *EditorModel) selectedPair() *models.BubblePair {
	if m.selected < 0 || m.selected >= len(m.doc.Pairs) {
		return nil
	}
	return &m.doc.Pairs[m.selected]
}

// clampSelection keeps the selection inside the document after
// structural mutations.
func (m *EditorModel) clampSelection() {
	if m.selected >= len(m.doc.Pairs) {
		m.selected = len(m.doc.Pairs) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// apply installs a mutated document and marks the session dirty when
// the value actually changed.
func (m *EditorModel) apply(next models.Script) bool {
	changed := documentChanged(m.doc, next)
	m.doc = next
	m.doc.Name = m.name
	m.clampSelection()
	if changed {
		m.dirty = true
	}
	return changed
}

// documentChanged is a cheap structural comparison used to detect
// rejected (no-op) mutations.
func documentChanged(a, b models.Script) bool {
	if a.Title != b.Title || a.TotalDurationSeconds != b.TotalDurationSeconds || len(a.Pairs) != len(b.Pairs) {
		return true
	}
	for i := range a.Pairs {
		if a.Pairs[i] != b.Pairs[i] {
			return true
		}
	}
	return false
}

// saveNow writes the document synchronously. Used on exit paths; the
// debounced autosave goes through scheduleSave instead.
func (m *EditorModel) saveNow() error {
	if !m.dirty {
		return nil
	}
	if err := files.WriteScript(m.name, m.doc); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

// splitOffsetAtCursor computes the rune offset of the textarea cursor
// line's start within the edited content. The split lands between
// lines; a cursor on the first line cannot split.
func (m *EditorModel) splitOffsetAtCursor() (int, bool) {
	line := m.textarea.Line()
	if line <= 0 {
		return 0, false
	}
	lines := strings.Split(m.textarea.Value(), "\n")
	if line >= len(lines) {
		return 0, false
	}
	offset := 0
	for i := 0; i < line; i++ {
		offset += len([]rune(lines[i])) + 1
	}
	return offset, true
}

// headerLine summarizes budget state for the view.
func (m *EditorModel) headerLine() string {
	spoken := m.doc.SpokenDuration()
	target := m.doc.TotalDurationSeconds
	base := fmt.Sprintf("%s — %.0fs of %.0fs", m.doc.Title, spoken, target)
	if m.doc.OverBudget() {
		return base + OverBudgetStyle.Render(fmt.Sprintf("  OVER BUDGET +%.0fs", spoken-target))
	}
	return base
}
