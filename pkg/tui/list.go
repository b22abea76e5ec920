package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/files"
)

// ScriptListModel lets the user pick, create or archive scripts.
type ScriptListModel struct {
	scripts   []string
	cursor    int
	width     int
	height    int
	creating  bool
	nameInput textinput.Model
	err       error
}

func NewScriptListModel() *ScriptListModel {
	ti := textinput.New()
	ti.Placeholder = "script-name"
	ti.CharLimit = 64

	m := &ScriptListModel{nameInput: ti}
	m.loadScripts()
	return m
}

func (m *ScriptListModel) loadScripts() {
	scripts, err := files.ListScripts()
	if err != nil {
		m.err = err
		return
	}
	m.scripts = scripts
	if m.cursor >= len(scripts) {
		m.cursor = len(scripts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *ScriptListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ScriptListModel) Init() tea.Cmd {
	return nil
}

func (m *ScriptListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.creating {
		return m.updateCreating(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.scripts)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.scripts) > 0 {
				name := m.scripts[m.cursor]
				return m, func() tea.Msg {
					return SwitchViewMsg{view: editorView, name: name}
				}
			}
		case "n":
			m.creating = true
			m.nameInput.SetValue("")
			m.nameInput.Focus()
			return m, textinput.Blink
		case "a":
			if len(m.scripts) > 0 {
				name := m.scripts[m.cursor]
				if err := files.ArchiveScript(name); err != nil {
					return m, func() tea.Msg { return StatusMsg(err.Error()) }
				}
				m.loadScripts()
				return m, func() tea.Msg { return StatusMsg(fmt.Sprintf("Archived %s", name)) }
			}
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *ScriptListModel) updateCreating(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.creating = false
			m.nameInput.Blur()
			return m, nil
		case "enter":
			name := m.nameInput.Value()
			if err := cli.ValidateScriptName(name); err != nil {
				return m, func() tea.Msg { return StatusMsg(err.Error()) }
			}
			if _, err := files.ReadScript(name); err == nil {
				return m, func() tea.Msg { return StatusMsg(fmt.Sprintf("Script %s already exists", name)) }
			}
			m.creating = false
			m.nameInput.Blur()
			return m, func() tea.Msg {
				return SwitchViewMsg{view: editorView, name: name}
			}
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *ScriptListModel) View() string {
	var rows []string
	rows = append(rows, TitleStyle.Render("Storybeat"), "")

	if m.err != nil {
		rows = append(rows, OverBudgetStyle.Render(m.err.Error()))
	}

	if m.creating {
		rows = append(rows, "New script name:", m.nameInput.View(), "")
	}

	if len(m.scripts) == 0 && !m.creating {
		rows = append(rows, NormalStyle.Render("No scripts yet. Press n to create one."))
	}

	for i, name := range m.scripts {
		line := "  " + name
		if i == m.cursor {
			line = SelectedStyle.Render("> " + name)
		} else {
			line = NormalStyle.Render(line)
		}
		rows = append(rows, line)
	}

	rows = append(rows, "", HelpStyle.Render("enter open · n new · a archive · q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
