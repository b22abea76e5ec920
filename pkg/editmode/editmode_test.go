package editmode

import (
	"math"
	"testing"

	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/script"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

func twoRowScript() models.Script {
	a := models.NewTextPair("first row", "", 1)
	b := models.NewTextPair("second row", "", 1)
	return models.Script{Title: "t", TotalDurationSeconds: 60, Pairs: []models.BubblePair{a, b}}
}

func TestEnterExitCommitsDuration(t *testing.T) {
	mut := script.NewMutator(timing.NewEstimator())
	c := New(mut)
	s := twoRowScript()
	id := s.Pairs[0].ID

	s = c.EnterEdit(s, id)
	if !c.IsEditing(id) {
		t.Fatalf("row not editing after EnterEdit")
	}

	// Typing updates content but not duration.
	s = mut.UpdateText(s, id, "one two three four five")
	if s.Pairs[0].Speech.DurationSeconds != 1 {
		t.Errorf("duration changed mid-edit: %v", s.Pairs[0].Speech.DurationSeconds)
	}

	s = c.ExitEdit(s)
	if _, ok := c.Editing(); ok {
		t.Errorf("still editing after ExitEdit")
	}
	if math.Abs(s.Pairs[0].Speech.DurationSeconds-2.0) > 1e-9 {
		t.Errorf("exit did not commit: duration = %v, want 2.0", s.Pairs[0].Speech.DurationSeconds)
	}
}

func TestSwitchingRowsCommitsThePrevious(t *testing.T) {
	mut := script.NewMutator(timing.NewEstimator())
	c := New(mut)
	s := twoRowScript()
	idA, idB := s.Pairs[0].ID, s.Pairs[1].ID

	s = c.EnterEdit(s, idA)
	s = mut.UpdateText(s, idA, "one two three four five")

	// Entering B flushes A's pending recompute exactly once.
	s = c.EnterEdit(s, idB)
	if math.Abs(s.Pairs[0].Speech.DurationSeconds-2.0) > 1e-9 {
		t.Errorf("previous row not committed on switch: %v", s.Pairs[0].Speech.DurationSeconds)
	}
	if !c.IsEditing(idB) || c.IsEditing(idA) {
		t.Errorf("exactly one row may be editing; editing A=%v B=%v", c.IsEditing(idA), c.IsEditing(idB))
	}
}

func TestReenteringSameRowDoesNotCommit(t *testing.T) {
	mut := script.NewMutator(timing.NewEstimator())
	c := New(mut)
	s := twoRowScript()
	id := s.Pairs[0].ID

	s = c.EnterEdit(s, id)
	s = mut.UpdateText(s, id, "one two three four five")
	s = c.EnterEdit(s, id)
	if s.Pairs[0].Speech.DurationSeconds != 1 {
		t.Errorf("re-entering the same row must not flush mid-edit: %v", s.Pairs[0].Speech.DurationSeconds)
	}
}

func TestPauseRowsAreNotModal(t *testing.T) {
	mut := script.NewMutator(timing.NewEstimator())
	c := New(mut)
	p := models.NewPausePair(2)
	s := models.Script{Pairs: []models.BubblePair{p}}

	s = c.EnterEdit(s, p.ID)
	if _, ok := c.Editing(); ok {
		t.Errorf("pause rows must never enter edit mode")
	}
	if out := c.ExitEdit(s); len(out.Pairs) != 1 {
		t.Errorf("ExitEdit with no active editor should be a no-op")
	}
}
