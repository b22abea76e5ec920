package script

import (
	"fmt"

	"github.com/storybeat/storybeat-cli/pkg/models"
)

// Validate checks the structural invariants every mutation must
// preserve. A failure here means a mutator bug (or a hand-edited file),
// not a user error.
func Validate(s models.Script) error {
	i := 0
	for i < len(s.Pairs) {
		p := s.Pairs[i]
		if p.ID == "" || p.Speech.ID == "" || p.Visual.ID == "" {
			return fmt.Errorf("row %d: missing identity", i)
		}
		if p.Speech.DurationSeconds < 0 || p.Visual.DurationSeconds < 0 {
			return fmt.Errorf("row %d: negative duration", i)
		}
		if p.Speech.Kind != models.KindText && p.Speech.Kind != models.KindPause {
			return fmt.Errorf("row %d: unknown speech kind %q", i, p.Speech.Kind)
		}
		if p.Visual.Kind == models.KindPause {
			return fmt.Errorf("row %d: pause on visual track", i)
		}
		span := p.VisualSpan
		if span < 0 {
			return fmt.Errorf("row %d: negative visual span %d", i, span)
		}
		if span == 0 {
			return fmt.Errorf("row %d: suppressed visual with no covering owner", i)
		}
		// The owner's span must exactly cover the following 0-rows.
		for k := 1; k < span; k++ {
			if i+k >= len(s.Pairs) {
				return fmt.Errorf("row %d: span %d runs past the last row", i, span)
			}
			if s.Pairs[i+k].VisualSpan != 0 {
				return fmt.Errorf("row %d: span %d not matched by suppressed row at %d", i, span, i+k)
			}
		}
		i += span
	}
	return nil
}

// Normalize repairs harmless drift in a loaded script: zero-value spans
// from old files become 1 and unset bubble kinds become text. Scripts
// that fail Validate after normalization are rejected by the store.
func Normalize(s models.Script) models.Script {
	out := s.Clone()
	covered := 0
	for i := range out.Pairs {
		p := &out.Pairs[i]
		if p.Speech.Kind == "" {
			p.Speech.Kind = models.KindText
		}
		if p.Visual.Kind == "" {
			p.Visual.Kind = models.KindText
		}
		if p.VisualSpan == 0 && covered == 0 {
			p.VisualSpan = 1
		}
		if covered > 0 {
			covered--
		}
		if p.VisualSpan > 1 {
			covered = p.VisualSpan - 1
		}
	}
	return out
}
