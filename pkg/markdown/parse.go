package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

var (
	timecodeRe = regexp.MustCompile(`^\[(\d{1,3}):(\d{2})\]\s?`)
	visualRe   = regexp.MustCompile(`\{([^{}]*)\}`)
	pauseRe    = regexp.MustCompile(`^\(pause\s+([0-9]*\.?[0-9]+)s?\)$`)
	targetRe   = regexp.MustCompile(`^Target:\s*(\d{1,3}):(\d{2})\s*$`)
)

// Parse reads the exchange format back into a script. Timecodes
// delimit rows; braced text is the visual direction, the remainder is
// spoken content; a line with no timecode still becomes a row (its
// position defaults to wherever it appears). Spoken durations are
// re-estimated with the given policy; pause durations come from the
// pause marker itself.
func Parse(input string, est timing.Estimator) (models.Script, error) {
	s := models.Script{TotalDurationSeconds: 60}

	sawContent := false
	for lineNo, raw := range strings.Split(input, "\n") {
		line := strings.TrimRight(raw, " \t\r")

		switch {
		case strings.HasPrefix(line, "# "):
			if s.Title == "" {
				s.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			}
			continue
		case targetRe.MatchString(line):
			m := targetRe.FindStringSubmatch(line)
			mins, _ := strconv.Atoi(m[1])
			secs, _ := strconv.Atoi(m[2])
			s.TotalDurationSeconds = float64(mins*60 + secs)
			continue
		}

		hasTimecode := timecodeRe.MatchString(line)
		body := timecodeRe.ReplaceAllString(line, "")
		if strings.TrimSpace(body) == "" && !hasTimecode {
			continue
		}

		pair, err := parseRow(body, est)
		if err != nil {
			return models.Script{}, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		s.Pairs = append(s.Pairs, pair)
		sawContent = true
	}

	if !sawContent {
		return models.Script{}, fmt.Errorf("no script content found")
	}
	return s, nil
}

func parseRow(body string, est timing.Estimator) (models.BubblePair, error) {
	body = strings.TrimSpace(body)

	if m := pauseRe.FindStringSubmatch(body); m != nil {
		d, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return models.BubblePair{}, fmt.Errorf("bad pause duration %q: %w", m[1], err)
		}
		if d < est.MinPauseSeconds {
			d = est.MinPauseSeconds
		}
		return models.NewPausePair(d), nil
	}

	var visual string
	if m := visualRe.FindStringSubmatch(body); m != nil {
		visual = strings.TrimSpace(m[1])
		body = strings.TrimSpace(visualRe.ReplaceAllString(body, " "))
		body = strings.Join(strings.Fields(body), " ")
	}

	return models.NewTextPair(body, visual, est.EstimateClamped(body)), nil
}
