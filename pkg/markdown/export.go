// Package markdown converts scripts to and from a plain-text exchange
// format: one line per row, a leading timecode, visual directions in
// braces, everything else spoken text. The format round-trips content;
// whitespace and multi-row visual grouping are flattened.
package markdown

import (
	"fmt"
	"math"
	"strings"

	"github.com/storybeat/storybeat-cli/pkg/models"
)

// FormatTimecode renders seconds as mm:ss, rounding to whole seconds.
func FormatTimecode(seconds float64) string {
	total := int(math.Round(math.Max(0, seconds)))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Export renders a script as timecoded markdown. Timecodes are the
// cumulative spoken start time of each row. Covered rows of a visual
// group carry no braces; the owner's braces hold the shared direction.
func Export(s models.Script) string {
	var out strings.Builder

	title := s.Title
	if title == "" {
		title = "Untitled"
	}
	fmt.Fprintf(&out, "# %s\n\n", title)
	fmt.Fprintf(&out, "Target: %s\n\n", FormatTimecode(s.TotalDurationSeconds))

	at := 0.0
	for _, p := range s.Pairs {
		fmt.Fprintf(&out, "[%s] ", FormatTimecode(at))
		if p.Speech.Kind == models.KindPause {
			fmt.Fprintf(&out, "(pause %gs)", p.Speech.DurationSeconds)
		} else {
			out.WriteString(flatten(p.Speech.Content))
			if p.VisualSpan != 0 && strings.TrimSpace(p.Visual.Content) != "" {
				fmt.Fprintf(&out, " {%s}", flatten(p.Visual.Content))
			}
		}
		out.WriteString("\n")
		at += p.Speech.DurationSeconds
	}

	return out.String()
}

// flatten folds internal newlines so every row stays on one line.
func flatten(text string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}
