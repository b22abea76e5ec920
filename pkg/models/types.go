package models

import "github.com/google/uuid"

// BubbleKind distinguishes spoken content from deliberate silence.
type BubbleKind string

const (
	KindText  BubbleKind = "text"
	KindPause BubbleKind = "pause"
)

// Track identifies which column of a pair an operation targets.
type Track string

const (
	TrackSpeech Track = "speech"
	TrackVisual Track = "visual"
)

// Bubble is one segment of content on one track.
type Bubble struct {
	ID              string     `yaml:"id"`
	Kind            BubbleKind `yaml:"kind"`
	Content         string     `yaml:"content"`
	DurationSeconds float64    `yaml:"duration_seconds"`
	// ManualDuration pins DurationSeconds against re-estimation
	// once the user has resized the bubble by hand.
	ManualDuration bool `yaml:"manual_duration,omitempty"`
}

// BubblePair is one row of the timeline: a speech bubble and a visual
// bubble sharing the same vertical slot.
//
// VisualSpan encodes multi-row visuals: 1 means the visual covers only
// its own row, 0 means the row's visual cell is suppressed because an
// earlier owner's span covers it, and N > 1 means the visual covers its
// own row plus the next N-1 rows (all of which must carry 0).
type BubblePair struct {
	ID         string `yaml:"id"`
	Speech     Bubble `yaml:"speech"`
	Visual     Bubble `yaml:"visual"`
	VisualSpan int    `yaml:"visual_span"`
}

// Script is the whole two-track document.
type Script struct {
	Name                 string       `yaml:"-"`
	Title                string       `yaml:"title"`
	TotalDurationSeconds float64      `yaml:"total_duration_seconds"`
	Pairs                []BubblePair `yaml:"pairs"`
}

// NewID returns a fresh, never-reused bubble or pair identity.
func NewID() string {
	return uuid.NewString()
}

// NewTextPair builds a normal row with its own single-row visual.
func NewTextPair(speech, visual string, duration float64) BubblePair {
	return BubblePair{
		ID: NewID(),
		Speech: Bubble{
			ID:              NewID(),
			Kind:            KindText,
			Content:         speech,
			DurationSeconds: duration,
		},
		Visual: Bubble{
			ID:      NewID(),
			Kind:    KindText,
			Content: visual,
		},
		VisualSpan: 1,
	}
}

// NewPausePair builds a silence row. Pause durations are always manual:
// there is no text to estimate from.
func NewPausePair(duration float64) BubblePair {
	p := BubblePair{
		ID: NewID(),
		Speech: Bubble{
			ID:              NewID(),
			Kind:            KindPause,
			DurationSeconds: duration,
			ManualDuration:  true,
		},
		Visual: Bubble{
			ID:   NewID(),
			Kind: KindText,
		},
		VisualSpan: 1,
	}
	return p
}

// Clone returns a deep copy; mutators work on clones so that every
// returned Script is an independent value.
func (s Script) Clone() Script {
	out := s
	out.Pairs = make([]BubblePair, len(s.Pairs))
	copy(out.Pairs, s.Pairs)
	return out
}

// IndexOf returns the position of the pair with the given id, or -1.
func (s Script) IndexOf(pairID string) int {
	for i, p := range s.Pairs {
		if p.ID == pairID {
			return i
		}
	}
	return -1
}

// SpokenDuration is the sum of all speech-track durations.
func (s Script) SpokenDuration() float64 {
	var total float64
	for _, p := range s.Pairs {
		total += p.Speech.DurationSeconds
	}
	return total
}

// OverBudget reports whether the spoken content exceeds the target runtime.
func (s Script) OverBudget() bool {
	return s.SpokenDuration() > s.TotalDurationSeconds
}
