// Package layout derives per-row pixel geometry from a script, a
// viewport and a zoom factor. Row heights encode speaking time: each
// row's share of the viewport is proportional to its spoken duration
// over the larger of (total spoken time, target runtime), so an
// under-filled timeline never stretches its rows to fill the screen.
//
// Both tracks of a row share one slot; the geometry here is computed
// once per row index and used by the speech and the visual column
// alike, which is what keeps the two columns pixel-synchronized.
package layout

import (
	"math"

	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

// Config carries the sizing policy. Zero values fall back to defaults.
type Config struct {
	// MinRowHeight is the floor for ordinary text rows.
	MinRowHeight float64
	// RowGap is the vertical spacing between row slots.
	RowGap float64
	// PixelsPerSecond scales the duration-proportional floor of pause
	// rows and the linear Timeline variant.
	PixelsPerSecond float64
}

const (
	defaultMinRowHeight = 48.0
	defaultRowGap       = 8.0
)

func (c Config) withDefaults() Config {
	if c.MinRowHeight <= 0 {
		c.MinRowHeight = defaultMinRowHeight
	}
	if c.RowGap < 0 {
		c.RowGap = defaultRowGap
	}
	if c.PixelsPerSecond <= 0 {
		c.PixelsPerSecond = timing.DefaultPixelsPerSecond
	}
	return c
}

// Row is the computed slot for one pair.
type Row struct {
	Top    float64
	Height float64
}

// Bottom returns the slot's ending pixel offset.
func (r Row) Bottom() float64 { return r.Top + r.Height }

// Metrics is the full layout result for one script and viewport.
type Metrics struct {
	Rows []Row
	// FillerHeight is the trailing region representing unclaimed time;
	// zero when the script meets or exceeds its target.
	FillerHeight float64
	// RemainingSeconds is the unclaimed time the filler stands for.
	RemainingSeconds float64
	OverBudget       bool
	// Scale is the uniform factor applied to the natural block;
	// 1 at zoom 0, the fit-to-viewport factor at zoom 1.
	Scale float64
	// TotalHeight is the scaled height of the whole block, filler and
	// gaps included.
	TotalHeight float64
	gap         float64
}

// Compute lays out the script inside a viewport of the given pixel
// height. zoom in [0,1] interpolates between natural (scrollable) and
// fit-to-viewport sizing; values outside the range are clamped.
func Compute(s models.Script, viewportHeight float64, zoom float64, cfg Config) Metrics {
	cfg = cfg.withDefaults()
	zoom = math.Min(1, math.Max(0, zoom))

	textDuration := s.SpokenDuration()
	remaining := math.Max(0, s.TotalDurationSeconds-textDuration)
	effectiveTotal := math.Max(textDuration, s.TotalDurationSeconds)

	m := Metrics{
		Rows:             make([]Row, len(s.Pairs)),
		RemainingSeconds: remaining,
		OverBudget:       textDuration > s.TotalDurationSeconds,
	}

	// Natural heights: proportional share of the viewport, clamped to
	// a fixed floor for text rows and a duration-proportional floor
	// for pauses so a long pause still looks long.
	for i, p := range s.Pairs {
		var h float64
		if effectiveTotal > 0 {
			h = p.Speech.DurationSeconds / effectiveTotal * viewportHeight
		}
		floor := cfg.MinRowHeight
		if p.Speech.Kind == models.KindPause {
			floor = timing.DurationToPixels(p.Speech.DurationSeconds, cfg.PixelsPerSecond)
		}
		m.Rows[i].Height = math.Max(h, floor)
	}
	if remaining > 0 && effectiveTotal > 0 {
		m.FillerHeight = remaining / effectiveTotal * viewportHeight
	}

	natural := m.FillerHeight
	for _, r := range m.Rows {
		natural += r.Height
	}
	blocks := len(m.Rows)
	if m.FillerHeight > 0 {
		blocks++
	}
	if blocks > 1 {
		natural += float64(blocks-1) * cfg.RowGap
	}

	fitScale := 1.0
	if natural > 0 {
		fitScale = math.Min(1, viewportHeight/natural)
	}
	m.Scale = 1 + zoom*(fitScale-1)

	// Apply the scale uniformly, gaps included, and assign offsets.
	m.gap = cfg.RowGap * m.Scale
	top := 0.0
	for i := range m.Rows {
		m.Rows[i].Height *= m.Scale
		m.Rows[i].Top = top
		top += m.Rows[i].Height
		if i < len(m.Rows)-1 || m.FillerHeight > 0 {
			top += m.gap
		}
	}
	m.FillerHeight *= m.Scale
	m.TotalHeight = top + m.FillerHeight
	if m.FillerHeight == 0 && len(m.Rows) > 0 {
		m.TotalHeight = m.Rows[len(m.Rows)-1].Bottom()
	}
	return m
}

// SpanExtent returns the vertical extent a span-owning visual bubble
// occupies: its own slot plus the next span-1 slots, inter-row gaps
// included. For span <= 1 rows this is just the row's own slot.
func (m Metrics) SpanExtent(ownerIndex, span int) Row {
	if ownerIndex < 0 || ownerIndex >= len(m.Rows) {
		return Row{}
	}
	last := ownerIndex + span - 1
	if span <= 1 || last >= len(m.Rows) {
		return m.Rows[ownerIndex]
	}
	return Row{
		Top:    m.Rows[ownerIndex].Top,
		Height: m.Rows[last].Bottom() - m.Rows[ownerIndex].Top,
	}
}

// Timeline is the historical scroll-length variant: row heights map
// linearly from duration via PixelsPerSecond, the viewport only
// determines what is visible, and there is no filler or zoom.
func Timeline(s models.Script, cfg Config) Metrics {
	cfg = cfg.withDefaults()
	m := Metrics{
		Rows:       make([]Row, len(s.Pairs)),
		OverBudget: s.OverBudget(),
		Scale:      1,
		gap:        cfg.RowGap,
	}
	top := 0.0
	for i, p := range s.Pairs {
		h := timing.DurationToPixels(p.Speech.DurationSeconds, cfg.PixelsPerSecond)
		if h < cfg.MinRowHeight {
			h = cfg.MinRowHeight
		}
		m.Rows[i] = Row{Top: top, Height: h}
		top += h
		if i < len(s.Pairs)-1 {
			top += cfg.RowGap
		}
	}
	m.TotalHeight = top
	return m
}
