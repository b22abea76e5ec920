package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storybeat/storybeat-cli/pkg/models"
)

type sessionState int

const (
	scriptListView sessionState = iota
	editorView
)

// App is the root bubbletea model routing between the script list and
// the two-track editor.
type App struct {
	state     sessionState
	settings  *models.Settings
	list      *ScriptListModel
	editor    *EditorModel
	width     int
	height    int
	statusMsg string
}

func NewApp(settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if settings.UI.AccentColor != "" {
		applyAccent(settings.UI.AccentColor)
	}
	return &App{
		state:    scriptListView,
		settings: settings,
		list:     NewScriptListModel(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.list != nil {
			a.list.SetSize(msg.Width, msg.Height)
		}
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if a.editor != nil {
				if err := a.editor.saveNow(); err != nil {
					// Quitting anyway would drop the unsaved edits.
					a.statusMsg = "Save failed: " + err.Error() + " (ctrl+c again to discard)"
					a.editor.dirty = false
					return a, nil
				}
			}
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case scriptListView:
			a.state = scriptListView
			if a.list == nil {
				a.list = NewScriptListModel()
			} else {
				a.list.loadScripts()
			}
			a.list.SetSize(a.width, a.height)
			return a, a.list.Init()
		case editorView:
			a.state = editorView
			editor, err := NewEditorModel(msg.name, a.settings)
			if err != nil {
				a.state = scriptListView
				a.statusMsg = err.Error()
				return a, nil
			}
			a.editor = editor
			a.editor.SetSize(a.width, a.height)
			return a, a.editor.Init()
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case scriptListView:
		var m tea.Model
		m, cmd = a.list.Update(msg)
		if ml, ok := m.(*ScriptListModel); ok {
			a.list = ml
		}
	case editorView:
		var m tea.Model
		m, cmd = a.editor.Update(msg)
		if em, ok := m.(*EditorModel); ok {
			a.editor = em
		}
	}

	return a, cmd
}

func (a *App) View() string {
	var view string
	switch a.state {
	case scriptListView:
		view = a.list.View()
	case editorView:
		view = a.editor.View()
	}

	if a.statusMsg != "" {
		status := StatusStyle.Render(a.statusMsg)
		view = lipgloss.JoinVertical(lipgloss.Left, view, status)
	}
	return view
}
