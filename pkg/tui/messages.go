package tui

// StatusMsg updates the status line at the bottom of the screen.
type StatusMsg string

// SwitchViewMsg asks the app to switch between the script list and the
// editor. Name is the script to open when switching to the editor.
type SwitchViewMsg struct {
	view sessionState
	name string
}

// autosaveTickMsg fires after the autosave debounce window. Gen guards
// against stale timers: only the most recently scheduled tick saves.
type autosaveTickMsg struct {
	gen int
}

// saveResultMsg reports the outcome of a fire-and-forget save.
type saveResultMsg struct {
	err error
}
