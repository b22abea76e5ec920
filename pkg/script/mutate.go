package script

import (
	"strings"

	"github.com/storybeat/storybeat-cli/pkg/models"
)

// Split divides one row into two consecutive rows at a character offset
// within the spoken text. The offset is in runes. Both halves must trim
// to non-empty text or the edit is rejected. Visual content is split at
// the proportional offset of the visual text; if the trailing slice
// would be empty the whole visual stays on the first row.
//
// Both resulting rows get fresh identities and freshly estimated
// durations; the original identity is discarded.
func (m Mutator) Split(s models.Script, pairID string, charOffset int) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 {
		return s
	}
	orig := s.Pairs[i]

	text := []rune(orig.Speech.Content)
	if charOffset <= 0 || charOffset >= len(text) {
		return s
	}
	before := string(text[:charOffset])
	after := string(text[charOffset:])
	if strings.TrimSpace(before) == "" || strings.TrimSpace(after) == "" {
		return s
	}

	visBefore, visAfter := splitProportional(orig.Visual.Content, charOffset, len(text))

	first := models.NewTextPair(before, visBefore, m.Est.EstimateClamped(before))
	second := models.NewTextPair(after, visAfter, m.Est.EstimateClamped(after))

	// Splitting inside a multi-row visual group keeps the group intact:
	// an owner grows its span by the extra row and keeps the whole
	// visual, a covered row yields two covered rows.
	switch {
	case orig.VisualSpan > 1:
		first.Visual.Content = orig.Visual.Content
		first.VisualSpan = orig.VisualSpan + 1
		second.Visual.Content = ""
		second.VisualSpan = 0
	case orig.VisualSpan == 0:
		first.Visual.Content = ""
		first.VisualSpan = 0
		second.Visual.Content = ""
		second.VisualSpan = 0
	}

	out := s.Clone()
	out.Pairs = append(out.Pairs[:i], append([]models.BubblePair{first, second}, out.Pairs[i+1:]...)...)
	if orig.VisualSpan == 0 {
		growOwner(out.Pairs, i, 1)
	}
	return out
}

// splitProportional cuts visual text at the same relative position as
// the spoken-text cut. This is a deliberate simplification, not a
// word-boundary heuristic.
func splitProportional(visual string, offset, textLen int) (string, string) {
	runes := []rune(visual)
	if len(runes) == 0 || textLen == 0 {
		return visual, ""
	}
	cut := offset * len(runes) / textLen
	if cut >= len(runes) {
		return visual, ""
	}
	if cut < 0 {
		cut = 0
	}
	after := strings.TrimSpace(string(runes[cut:]))
	if after == "" {
		return visual, ""
	}
	return strings.TrimSpace(string(runes[:cut])), after
}

// InsertPause inserts a silence row at the given index, shifting later
// rows down. Inserting strictly inside a multi-row visual first splits
// the span so the pause gets its own independent visual cell rather
// than being absorbed into someone else's group.
func (m Mutator) InsertPause(s models.Script, atIndex int) models.Script {
	if atIndex < 0 || atIndex > len(s.Pairs) {
		return s
	}
	out := s
	if atIndex < len(s.Pairs) && s.Pairs[atIndex].VisualSpan == 0 {
		out = m.SplitVisualSpan(out, atIndex)
	}
	out = out.Clone()
	pause := models.NewPausePair(m.DefaultPause)
	out.Pairs = append(out.Pairs[:atIndex], append([]models.BubblePair{pause}, out.Pairs[atIndex:]...)...)
	return out
}

// DeletePair removes a row. A span passing through the deleted row is
// repaired: deleting a covered row shrinks its owner, deleting an owner
// promotes the next covered row to own the remainder with an empty
// visual.
func (m Mutator) DeletePair(s models.Script, pairID string) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 || len(s.Pairs) <= 1 {
		return s
	}
	out := s.Clone()
	victim := out.Pairs[i]
	switch {
	case victim.VisualSpan == 0:
		growOwner(out.Pairs, i, -1)
	case victim.VisualSpan > 1:
		next := &out.Pairs[i+1]
		next.Visual = models.Bubble{ID: models.NewID(), Kind: models.KindText}
		next.VisualSpan = victim.VisualSpan - 1
	}
	out.Pairs = append(out.Pairs[:i], out.Pairs[i+1:]...)
	return out
}

// MergeUp folds the row into the row above it; MergeDown folds the next
// row into this one. Non-empty texts are joined with a newline, the
// merged duration is re-estimated (manual pins are cleared), and the
// two rows' span contributions are summed.
func (m Mutator) MergeUp(s models.Script, pairID string) models.Script {
	i := s.IndexOf(pairID)
	if i <= 0 {
		return s
	}
	return m.mergePairs(s, i-1)
}

func (m Mutator) MergeDown(s models.Script, pairID string) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 || i >= len(s.Pairs)-1 {
		return s
	}
	return m.mergePairs(s, i)
}

// mergePairs merges rows at index i and i+1 into one fresh row at i.
func (m Mutator) mergePairs(s models.Script, i int) models.Script {
	out := s.Clone()
	upper, lower := out.Pairs[i], out.Pairs[i+1]

	speech := joinNonEmpty(upper.Speech.Content, lower.Speech.Content)
	visual := joinNonEmpty(upper.Visual.Content, lower.Visual.Content)

	var merged models.BubblePair
	if upper.Speech.Kind == models.KindPause && lower.Speech.Kind == models.KindPause {
		merged = models.NewPausePair(upper.Speech.DurationSeconds + lower.Speech.DurationSeconds)
	} else {
		merged = models.NewTextPair(speech, visual, m.Est.EstimateClamped(speech))
	}

	// Span bookkeeping. An independent or owning upper row keeps the
	// arithmetic local: the merged row owns both rows' coverage minus
	// the row that vanished. A covered upper row means the merge crosses
	// the lower boundary of a group owned above; the merged row inherits
	// the lower row's span and the owner is settled below.
	if upper.VisualSpan != 0 {
		merged.VisualSpan = upper.VisualSpan + lower.VisualSpan - 1
	} else if lower.VisualSpan > 1 {
		merged.VisualSpan = lower.VisualSpan
	} else {
		merged.VisualSpan = 0
		merged.Visual.Content = ""
	}

	out.Pairs = append(out.Pairs[:i], append([]models.BubblePair{merged}, out.Pairs[i+2:]...)...)

	if upper.VisualSpan == 0 {
		owner := i - 1
		for owner >= 0 && out.Pairs[owner].VisualSpan == 0 {
			owner--
		}
		if owner >= 0 {
			if lower.VisualSpan == 1 {
				// The group above absorbs an independent row: the owner
				// covers the same number of rows and takes over the
				// absorbed row's visual direction.
				if visual != "" {
					out.Pairs[owner].Visual.Content = joinNonEmpty(out.Pairs[owner].Visual.Content, visual)
				}
			} else if out.Pairs[owner].VisualSpan > 1 {
				// Two of the owner's rows collapsed into one, or the
				// merged row left the group to own the group below:
				// either way the owner covers one row fewer.
				out.Pairs[owner].VisualSpan--
			}
		}
	}
	return out
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}

// MovePair swaps a row with its neighbor in the given direction
// (-1 up, +1 down). A row taking part in a multi-row visual is split
// out of its group first, the same rule InsertPause applies.
func (m Mutator) MovePair(s models.Script, pairID string, direction int) models.Script {
	if direction != -1 && direction != 1 {
		return s
	}
	i := s.IndexOf(pairID)
	j := i + direction
	if i < 0 || j < 0 || j >= len(s.Pairs) {
		return s
	}
	out := m.isolateVisual(s, i)
	out = m.isolateVisual(out, j)
	if out.Pairs[i].VisualSpan != 1 || out.Pairs[j].VisualSpan != 1 {
		return s
	}
	out = out.Clone()
	out.Pairs[i], out.Pairs[j] = out.Pairs[j], out.Pairs[i]
	return out
}

// isolateVisual turns the row at index into an independent single-row
// visual cell, splitting any group that passes through it.
func (m Mutator) isolateVisual(s models.Script, i int) models.Script {
	if s.Pairs[i].VisualSpan == 0 {
		s = m.SplitVisualSpan(s, i)
	}
	if s.Pairs[i].VisualSpan > 1 {
		s = m.SplitVisualSpan(s, i+1)
	}
	return s
}
