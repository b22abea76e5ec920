package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/storybeat/storybeat-cli/internal/cli"
	"github.com/storybeat/storybeat-cli/pkg/layout"
	"github.com/storybeat/storybeat-cli/pkg/models"
)

// chromeLines is the vertical space reserved for header and footer.
const chromeLines = 5

func (m *EditorModel) layoutConfig() layout.Config {
	return layout.Config{
		MinRowHeight:    m.settings.Layout.MinRowHeight,
		RowGap:          m.settings.Layout.RowGap,
		PixelsPerSecond: m.settings.Timing.PixelsPerSecond,
	}
}

// rowLines converts the layout engine's pixel heights into terminal
// line counts, with a floor so every row stays readable.
func rowLines(metrics layout.Metrics) []int {
	lines := make([]int, len(metrics.Rows))
	for i, r := range metrics.Rows {
		n := int(math.Round(r.Height / pxPerLine))
		if n < 2 {
			n = 2
		}
		lines[i] = n
	}
	return lines
}

func (m *EditorModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	contentLines := m.height - chromeLines
	if contentLines < 6 {
		contentLines = 6
	}
	viewportPx := float64(contentLines) * pxPerLine

	// Compact mode uses the linear scroll-length layout: heights map
	// straight from duration, no filler and no zoom.
	var metrics layout.Metrics
	if m.compact {
		metrics = layout.Timeline(m.doc, m.layoutConfig())
	} else {
		metrics = layout.Compute(m.doc, viewportPx, m.zoom, m.layoutConfig())
	}
	lines := rowLines(metrics)

	speech := m.renderSpeechColumn(lines)
	visual := m.renderVisualColumn(lines)
	body := lipgloss.JoinHorizontal(lipgloss.Top, speech, " ", visual)

	modeLabel := fmt.Sprintf("zoom %.0f%%", m.zoom*100)
	if m.compact {
		modeLabel = "compact"
	}
	sections := []string{
		TitleStyle.Render(m.headerLine()),
		HeaderStyle.Render(fmt.Sprintf("%s  ·  %d rows", modeLabel, len(m.doc.Pairs))),
		body,
	}

	if metrics.FillerHeight > 0 {
		fillerLines := int(math.Round(metrics.FillerHeight / pxPerLine))
		if fillerLines < 1 {
			fillerLines = 1
		}
		label := fmt.Sprintf("remaining %s", cli.FormatSeconds(metrics.RemainingSeconds))
		filler := FillerStyle.Width(m.columnWidth()*2 + 1).Height(fillerLines).Render(label)
		sections = append(sections, filler)
	}

	sections = append(sections, HelpStyle.Render(m.helpLine()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *EditorModel) renderSpeechColumn(lines []int) string {
	width := m.columnWidth()
	var boxes []string
	for i, p := range m.doc.Pairs {
		style := InactiveBorderStyle
		if p.Speech.Kind == models.KindPause {
			style = PauseBorderStyle
		}
		if i == m.selected {
			style = ActiveBorderStyle
		}

		var content string
		switch {
		case m.mode == modeEditSpeech && m.coord.IsEditing(p.ID):
			m.textarea.SetHeight(lines[i])
			content = m.textarea.View()
		case p.Speech.Kind == models.KindPause:
			content = fmt.Sprintf("· pause %s ·", cli.FormatSeconds(p.Speech.DurationSeconds))
		default:
			content = wordwrap.String(p.Speech.Content, width-2)
		}

		label := " "
		if m.settings.UI.ShowInfoColumn {
			label = DurationStyle.Render(cli.FormatSeconds(p.Speech.DurationSeconds))
		}
		if m.mode == modeResize && i == m.selected {
			label = StatusStyle.Render(fmt.Sprintf("resize %s", cli.FormatSeconds(p.Speech.DurationSeconds)))
		}

		box := style.Width(width - 2).Height(lines[i]).Render(content)
		boxes = append(boxes, lipgloss.JoinVertical(lipgloss.Left, box, label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m *EditorModel) renderVisualColumn(lines []int) string {
	width := m.columnWidth()
	var boxes []string
	for i := 0; i < len(m.doc.Pairs); i++ {
		p := m.doc.Pairs[i]
		if p.VisualSpan == 0 {
			continue
		}

		// A span owner's box covers its own slot plus every covered
		// slot below, borders, duration labels and gaps included.
		height := lines[i]
		for k := 1; k < p.VisualSpan && i+k < len(lines); k++ {
			height += lines[i+k] + 3
		}

		style := InactiveBorderStyle
		if i == m.selected || (m.selected > i && m.selected < i+p.VisualSpan) {
			style = ActiveBorderStyle
		}

		var content string
		if m.mode == modeEditVisual && i == m.selected {
			content = m.input.View()
		} else {
			content = wordwrap.String(p.Visual.Content, width-2)
			if p.VisualSpan > 1 {
				content = DurationStyle.Render(fmt.Sprintf("⇕ %d rows", p.VisualSpan)) + "\n" + content
			}
		}

		box := style.Width(width - 2).Height(height).Render(content)
		boxes = append(boxes, lipgloss.JoinVertical(lipgloss.Left, box, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m *EditorModel) helpLine() string {
	switch m.mode {
	case modeEditSpeech:
		return "esc/ctrl+d done · ctrl+s split at cursor line"
	case modeEditVisual:
		return "enter/esc done"
	case modeResize:
		return "+/- resize · esc done"
	case modeTitle:
		return "enter set title · esc cancel"
	case modeTarget:
		return "enter set target seconds · esc cancel"
	}
	help := []string{
		"enter edit", "v visual", "p pause", "x delete",
		"m/M merge", "g/G group visual", "b break group",
		"r resize", "+/- zoom", "z compact", "t/T title/target", "c copy", "s save", "q back",
	}
	return strings.Join(help, " · ")
}
