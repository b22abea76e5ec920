package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/storybeat/storybeat-cli/pkg/files"
	"github.com/storybeat/storybeat-cli/pkg/markdown"
	"github.com/storybeat/storybeat-cli/pkg/models"
)

func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// scheduleSave arms the autosave debounce. Every new edit bumps the
// generation so earlier timers become stale.
func (m *EditorModel) scheduleSave() tea.Cmd {
	m.saveGen++
	gen := m.saveGen
	delay := time.Duration(m.settings.Editor.AutosaveSeconds) * time.Second
	if delay <= 0 {
		delay = 3 * time.Second
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return autosaveTickMsg{gen: gen}
	})
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autosaveTickMsg:
		if msg.gen != m.saveGen || !m.dirty {
			return m, nil
		}
		doc, name := m.doc, m.name
		m.dirty = false
		return m, func() tea.Msg {
			return saveResultMsg{err: files.WriteScript(name, doc)}
		}

	case saveResultMsg:
		if msg.err != nil {
			m.dirty = true
			return m, func() tea.Msg { return StatusMsg("Autosave failed: " + msg.err.Error()) }
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEditSpeech:
			return m.updateEditSpeech(msg)
		case modeEditVisual:
			return m.updateEditVisual(msg)
		case modeResize:
			return m.updateResize(msg)
		case modeTitle, modeTarget:
			return m.updateFieldInput(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m *EditorModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.doc.Pairs)-1 {
			m.selected++
		}

	case "enter", "i":
		pair := m.selectedPair()
		if pair == nil || pair.Speech.Kind == models.KindPause {
			return m, nil
		}
		m.doc = m.coord.EnterEdit(m.doc, pair.ID)
		m.mode = modeEditSpeech
		m.textarea.SetValue(pair.Speech.Content)
		m.textarea.Focus()
		return m, nil

	case "v":
		pair := m.selectedPair()
		if pair == nil || pair.VisualSpan == 0 {
			return m, func() tea.Msg { return StatusMsg("Row's visual is owned by the group above (b breaks it out)") }
		}
		m.mode = modeEditVisual
		m.input.SetValue(pair.Visual.Content)
		m.input.Focus()
		return m, nil

	case "p":
		if m.apply(m.mut.InsertPause(m.doc, m.selected+1)) {
			return m, m.scheduleSave()
		}
	case "P":
		if m.apply(m.mut.InsertPause(m.doc, m.selected)) {
			m.selected++
			return m, m.scheduleSave()
		}

	case "x":
		pair := m.selectedPair()
		if pair != nil && m.apply(m.mut.DeletePair(m.doc, pair.ID)) {
			return m, m.scheduleSave()
		}

	case "m":
		pair := m.selectedPair()
		if pair != nil && m.apply(m.mut.MergeUp(m.doc, pair.ID)) {
			m.selected--
			m.clampSelection()
			return m, m.scheduleSave()
		}
	case "M":
		pair := m.selectedPair()
		if pair != nil && m.apply(m.mut.MergeDown(m.doc, pair.ID)) {
			return m, m.scheduleSave()
		}

	case "g":
		pair := m.selectedPair()
		if pair != nil && m.apply(m.mut.MergeVisualUp(m.doc, pair.ID)) {
			return m, m.scheduleSave()
		}
	case "G":
		pair := m.selectedPair()
		if pair != nil && m.apply(m.mut.MergeVisualDown(m.doc, pair.ID)) {
			return m, m.scheduleSave()
		}
	case "b":
		if m.apply(m.mut.SplitVisualSpan(m.doc, m.selected)) {
			return m, m.scheduleSave()
		}

	case "K":
		pair := m.selectedPair()
		if pair != nil && m.apply(m.mut.MovePair(m.doc, pair.ID, -1)) {
			m.selected--
			m.clampSelection()
			return m, m.scheduleSave()
		}
	case "J":
		pair := m.selectedPair()
		if pair != nil && m.apply(m.mut.MovePair(m.doc, pair.ID, 1)) {
			m.selected++
			m.clampSelection()
			return m, m.scheduleSave()
		}

	case "r":
		if m.selectedPair() != nil {
			m.mode = modeResize
		}

	case "-":
		m.zoom = clampZoom(m.zoom - 0.1)
	case "+", "=":
		m.zoom = clampZoom(m.zoom + 0.1)
	case "z":
		m.compact = !m.compact

	case "t":
		m.mode = modeTitle
		m.input.SetValue(m.doc.Title)
		m.input.Focus()
		return m, nil
	case "T":
		m.mode = modeTarget
		m.input.SetValue(strconv.FormatFloat(m.doc.TotalDurationSeconds, 'f', -1, 64))
		m.input.Focus()
		return m, nil

	case "c":
		if err := clipboard.WriteAll(markdown.Export(m.doc)); err != nil {
			return m, func() tea.Msg { return StatusMsg("Copy failed: " + err.Error()) }
		}
		return m, func() tea.Msg { return StatusMsg("Copied markdown to clipboard") }

	case "ctrl+s", "s":
		if err := m.saveNow(); err != nil {
			return m, func() tea.Msg { return StatusMsg("Save failed: " + err.Error()) }
		}
		return m, func() tea.Msg { return StatusMsg("Saved " + m.name) }

	case "q", "esc":
		if err := m.saveNow(); err != nil {
			return m, func() tea.Msg { return StatusMsg("Save failed: " + err.Error()) }
		}
		return m, func() tea.Msg { return SwitchViewMsg{view: scriptListView} }
	}
	return m, nil
}

// updateEditSpeech routes keys to the textarea while a row's spoken
// text is in edit mode. Esc and ctrl+d both exit and commit; ctrl+s
// splits the row between lines at the cursor.
func (m *EditorModel) updateEditSpeech(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, _ := m.coord.Editing()

	switch msg.String() {
	case "esc", "ctrl+d":
		m.doc = m.mut.UpdateText(m.doc, id, m.textarea.Value())
		m.doc = m.coord.ExitEdit(m.doc)
		m.textarea.Blur()
		m.mode = modeNormal
		m.dirty = true
		return m, m.scheduleSave()

	case "ctrl+s":
		offset, ok := m.splitOffsetAtCursor()
		if !ok {
			return m, func() tea.Msg { return StatusMsg("Move the cursor below the first line to split") }
		}
		m.doc = m.mut.UpdateText(m.doc, id, m.textarea.Value())
		m.doc = m.coord.ExitEdit(m.doc)
		m.textarea.Blur()
		m.mode = modeNormal
		if m.apply(m.mut.Split(m.doc, id, offset)) {
			return m, m.scheduleSave()
		}
		m.dirty = true
		return m, m.scheduleSave()
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	// Content flows into the document on every keystroke; duration is
	// only recomputed when edit mode ends.
	m.doc = m.mut.UpdateText(m.doc, id, m.textarea.Value())
	return m, cmd
}

func (m *EditorModel) updateEditVisual(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pair := m.selectedPair()
	if pair == nil {
		m.mode = modeNormal
		return m, nil
	}

	switch msg.String() {
	case "esc", "enter":
		if m.apply(m.mut.UpdateVisual(m.doc, pair.ID, m.input.Value())) {
			m.input.Blur()
			m.mode = modeNormal
			return m, m.scheduleSave()
		}
		m.input.Blur()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateResize streams UpdateDuration calls while the resize gesture
// is active; the layout re-renders on every intermediate value.
func (m *EditorModel) updateResize(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pair := m.selectedPair()
	if pair == nil {
		m.mode = modeNormal
		return m, nil
	}

	switch msg.String() {
	case "esc", "enter", "r":
		m.mode = modeNormal
		return m, nil
	case "+", "=", "up", "k":
		next := pair.Speech.DurationSeconds + resizeStepSeconds
		if m.apply(m.mut.UpdateDuration(m.doc, pair.ID, models.TrackSpeech, next)) {
			return m, m.scheduleSave()
		}
	case "-", "_", "down", "j":
		next := pair.Speech.DurationSeconds - resizeStepSeconds
		if m.apply(m.mut.UpdateDuration(m.doc, pair.ID, models.TrackSpeech, next)) {
			return m, m.scheduleSave()
		}
	}
	return m, nil
}

func (m *EditorModel) updateFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.mode = modeNormal
		return m, nil
	case "enter":
		value := m.input.Value()
		m.input.Blur()
		mode := m.mode
		m.mode = modeNormal
		if mode == modeTitle {
			if m.apply(m.mut.UpdateTitle(m.doc, value)) {
				return m, m.scheduleSave()
			}
			return m, nil
		}
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return m, func() tea.Msg { return StatusMsg(fmt.Sprintf("Invalid duration %q", value)) }
		}
		if m.apply(m.mut.UpdateTargetDuration(m.doc, seconds)) {
			return m, m.scheduleSave()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func clampZoom(z float64) float64 {
	if z < 0 {
		return 0
	}
	if z > 1 {
		return 1
	}
	return z
}
