// Package script holds the document algebra for two-track scripts:
// every operation takes a models.Script value and returns a new one,
// leaving the input untouched. Operations whose preconditions do not
// hold return the input unchanged; a rejected edit is a normal outcome
// of stale UI state, not an error.
package script

import (
	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

// DefaultPauseSeconds is the initial duration of a freshly inserted pause.
const DefaultPauseSeconds = 2.0

// DefaultTargetSeconds is the runtime budget of a brand-new script.
const DefaultTargetSeconds = 60.0

// Mutator applies the operation set with a fixed timing policy.
type Mutator struct {
	Est          timing.Estimator
	DefaultPause float64
}

// NewMutator returns a mutator using the given estimation policy.
func NewMutator(est timing.Estimator) Mutator {
	return Mutator{Est: est, DefaultPause: DefaultPauseSeconds}
}

// New creates an empty script with a single default row.
func (m Mutator) New(title string) models.Script {
	return models.Script{
		Title:                title,
		TotalDurationSeconds: DefaultTargetSeconds,
		Pairs: []models.BubblePair{
			models.NewTextPair("", "", m.Est.MinTextSeconds),
		},
	}
}

// UpdateText replaces spoken content without touching the stored
// duration; recomputation is deferred to CommitText so the row height
// does not jitter on every keystroke.
func (m Mutator) UpdateText(s models.Script, pairID, content string) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 {
		return s
	}
	out := s.Clone()
	out.Pairs[i].Speech.Content = content
	return out
}

// CommitText recomputes the spoken duration from content, unless the
// user pinned the duration by hand.
func (m Mutator) CommitText(s models.Script, pairID string) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 || s.Pairs[i].Speech.ManualDuration {
		return s
	}
	out := s.Clone()
	out.Pairs[i].Speech.DurationSeconds = m.Est.EstimateClamped(out.Pairs[i].Speech.Content)
	return out
}

// UpdateVisual replaces visual content. Visual durations are never
// derived from text.
func (m Mutator) UpdateVisual(s models.Script, pairID, content string) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 {
		return s
	}
	out := s.Clone()
	out.Pairs[i].Visual.Content = content
	return out
}

// UpdateDuration applies a drag-resize: pins the duration and clamps it
// to the track- and kind-specific floor no matter what was requested.
func (m Mutator) UpdateDuration(s models.Script, pairID string, track models.Track, seconds float64) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 {
		return s
	}
	out := s.Clone()
	switch track {
	case models.TrackSpeech:
		b := &out.Pairs[i].Speech
		floor := m.Est.FloorFor(b.Kind == models.KindPause)
		if seconds < floor {
			seconds = floor
		}
		b.DurationSeconds = seconds
		b.ManualDuration = true
	case models.TrackVisual:
		b := &out.Pairs[i].Visual
		if seconds < m.Est.MinTextSeconds {
			seconds = m.Est.MinTextSeconds
		}
		b.DurationSeconds = seconds
		b.ManualDuration = true
	default:
		return s
	}
	return out
}

// UpdateTitle renames the script.
func (m Mutator) UpdateTitle(s models.Script, title string) models.Script {
	out := s.Clone()
	out.Title = title
	return out
}

// UpdateTargetDuration sets the runtime budget. The budget is
// independent of the sum of row durations.
func (m Mutator) UpdateTargetDuration(s models.Script, seconds float64) models.Script {
	if seconds < 0 {
		seconds = 0
	}
	out := s.Clone()
	out.TotalDurationSeconds = seconds
	return out
}
