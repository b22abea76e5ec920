// Package editmode enforces the single-active-editor rule: at most one
// row's spoken text is in free-text edit mode at a time. Durations are
// only recomputed when editing finishes, so the timeline never jitters
// while the user types.
package editmode

import (
	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/script"
)

// Coordinator tracks which row, if any, is being edited. Transitions
// return the (possibly updated) script so pending duration recomputes
// are never lost.
type Coordinator struct {
	mut       script.Mutator
	editingID string
}

// New returns a coordinator with no active editor.
func New(mut script.Mutator) *Coordinator {
	return &Coordinator{mut: mut}
}

// Editing reports the currently edited row id, if any.
func (c *Coordinator) Editing() (string, bool) {
	return c.editingID, c.editingID != ""
}

// IsEditing reports whether the given row is the active editor.
func (c *Coordinator) IsEditing(pairID string) bool {
	return c.editingID != "" && c.editingID == pairID
}

// EnterEdit makes the given row the active editor. If another row was
// editing, its pending duration recompute is committed first. Only the
// spoken side of a text row is modal; pause rows are rejected.
func (c *Coordinator) EnterEdit(s models.Script, pairID string) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 || s.Pairs[i].Speech.Kind == models.KindPause {
		return s
	}
	if c.editingID != "" && c.editingID != pairID {
		s = c.mut.CommitText(s, c.editingID)
	}
	c.editingID = pairID
	return s
}

// ExitEdit commits the active row's duration recompute and leaves edit
// mode. Called on cancel, soft submit, or any interaction outside the
// editing row.
func (c *Coordinator) ExitEdit(s models.Script) models.Script {
	if c.editingID == "" {
		return s
	}
	s = c.mut.CommitText(s, c.editingID)
	c.editingID = ""
	return s
}
