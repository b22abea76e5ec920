package script

import "github.com/storybeat/storybeat-cli/pkg/models"

// ownerIndexOf walks backward from a covered row to the row that owns
// its visual group. Returns -1 if the walk falls off the front, which
// means the span bookkeeping is already broken.
func ownerIndexOf(pairs []models.BubblePair, coveredIndex int) int {
	i := coveredIndex
	for i >= 0 && pairs[i].VisualSpan == 0 {
		i--
	}
	return i
}

// growOwner adjusts the span of the owner covering the row at index by
// delta rows. No-op when the row is not covered by anyone.
func growOwner(pairs []models.BubblePair, index, delta int) {
	if index >= len(pairs) || pairs[index].VisualSpan != 0 {
		return
	}
	owner := ownerIndexOf(pairs, index)
	if owner < 0 {
		return
	}
	span := pairs[owner].VisualSpan + delta
	if span < 1 {
		span = 1
	}
	pairs[owner].VisualSpan = span
}

// MergeVisualUp folds the row's visual into the group above it. The
// spoken track is untouched. Walks up to the nearest span owner,
// concatenates visual content into it, extends its span by the mergee's
// contribution, and suppresses the mergee's visual cell.
func (m Mutator) MergeVisualUp(s models.Script, pairID string) models.Script {
	i := s.IndexOf(pairID)
	if i <= 0 || s.Pairs[i].VisualSpan == 0 {
		return s
	}
	owner := ownerIndexOf(s.Pairs, i-1)
	if owner < 0 {
		return s
	}
	out := s.Clone()
	out.Pairs[owner].Visual.Content = joinNonEmpty(out.Pairs[owner].Visual.Content, out.Pairs[i].Visual.Content)
	out.Pairs[owner].VisualSpan += out.Pairs[i].VisualSpan
	out.Pairs[i].Visual = models.Bubble{ID: models.NewID(), Kind: models.KindText}
	out.Pairs[i].VisualSpan = 0
	return out
}

// MergeVisualDown absorbs the immediate next row's visual into this
// row's group. Both rows must have independent (non-suppressed) visual
// cells.
func (m Mutator) MergeVisualDown(s models.Script, pairID string) models.Script {
	i := s.IndexOf(pairID)
	if i < 0 || i >= len(s.Pairs)-1 || s.Pairs[i].VisualSpan == 0 {
		return s
	}
	next := i + s.Pairs[i].VisualSpan
	if next >= len(s.Pairs) || s.Pairs[next].VisualSpan == 0 {
		return s
	}
	out := s.Clone()
	out.Pairs[i].Visual.Content = joinNonEmpty(out.Pairs[i].Visual.Content, out.Pairs[next].Visual.Content)
	out.Pairs[i].VisualSpan += out.Pairs[next].VisualSpan
	out.Pairs[next].Visual = models.Bubble{ID: models.NewID(), Kind: models.KindText}
	out.Pairs[next].VisualSpan = 0
	return out
}

// SplitVisualSpan breaks a multi-row visual group in two at a covered
// row: the owner keeps the rows before the split point and the covered
// row becomes the owner of the remainder with a fresh empty visual.
// This is the only way to take a row back out of a group.
func (m Mutator) SplitVisualSpan(s models.Script, atIndex int) models.Script {
	if atIndex < 0 || atIndex >= len(s.Pairs) || s.Pairs[atIndex].VisualSpan != 0 {
		return s
	}
	owner := ownerIndexOf(s.Pairs, atIndex)
	if owner < 0 {
		return s
	}
	spanBefore := atIndex - owner
	spanAfter := s.Pairs[owner].VisualSpan - spanBefore
	if spanAfter < 1 {
		return s
	}
	out := s.Clone()
	out.Pairs[owner].VisualSpan = spanBefore
	out.Pairs[atIndex].Visual = models.Bubble{ID: models.NewID(), Kind: models.KindText}
	out.Pairs[atIndex].VisualSpan = spanAfter
	return out
}
