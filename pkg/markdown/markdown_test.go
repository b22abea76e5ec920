package markdown

import (
	"strings"
	"testing"

	"github.com/storybeat/storybeat-cli/pkg/models"
	"github.com/storybeat/storybeat-cli/pkg/script"
	"github.com/storybeat/storybeat-cli/pkg/timing"
)

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{2.4, "00:02"},
		{59.6, "01:00"},
		{60, "01:00"},
		{90, "01:30"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatTimecode(tt.seconds); got != tt.want {
			t.Errorf("FormatTimecode(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestExportFormat(t *testing.T) {
	mut := script.NewMutator(timing.NewEstimator())
	s := mut.New("Demo Day")
	s = mut.UpdateText(s, s.Pairs[0].ID, "one two three four five")
	s = mut.CommitText(s, s.Pairs[0].ID)
	s = mut.UpdateVisual(s, s.Pairs[0].ID, "title card")
	s = mut.InsertPause(s, 1)
	s = mut.UpdateTargetDuration(s, 90)

	out := Export(s)

	if !strings.HasPrefix(out, "# Demo Day\n") {
		t.Errorf("missing title heading:\n%s", out)
	}
	if !strings.Contains(out, "Target: 01:30") {
		t.Errorf("missing target line:\n%s", out)
	}
	if !strings.Contains(out, "[00:00] one two three four five {title card}") {
		t.Errorf("missing first row:\n%s", out)
	}
	// The pause starts after the 2.0s of speech.
	if !strings.Contains(out, "[00:02] (pause 2s)") {
		t.Errorf("missing pause row:\n%s", out)
	}
}

func TestParseBasicDocument(t *testing.T) {
	est := timing.NewEstimator()
	input := `# My Script

Target: 02:00

[00:00] hello there {wide shot}
[00:02] (pause 1.5s)
second row without timecode
`
	s, err := Parse(input, est)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Title != "My Script" {
		t.Errorf("title = %q", s.Title)
	}
	if s.TotalDurationSeconds != 120 {
		t.Errorf("target = %v, want 120", s.TotalDurationSeconds)
	}
	if len(s.Pairs) != 3 {
		t.Fatalf("rows = %d, want 3", len(s.Pairs))
	}
	if s.Pairs[0].Speech.Content != "hello there" || s.Pairs[0].Visual.Content != "wide shot" {
		t.Errorf("row 0 = %q / %q", s.Pairs[0].Speech.Content, s.Pairs[0].Visual.Content)
	}
	if s.Pairs[1].Speech.Kind != models.KindPause || s.Pairs[1].Speech.DurationSeconds != 1.5 {
		t.Errorf("row 1 = %q %v", s.Pairs[1].Speech.Kind, s.Pairs[1].Speech.DurationSeconds)
	}
	if s.Pairs[2].Speech.Content != "second row without timecode" {
		t.Errorf("row 2 = %q", s.Pairs[2].Speech.Content)
	}
	if err := script.Validate(s); err != nil {
		t.Errorf("parsed script invalid: %v", err)
	}
}

func TestParseEmptyInputIsAnError(t *testing.T) {
	if _, err := Parse("", timing.NewEstimator()); err == nil {
		t.Errorf("empty input must be a parse error, not an empty script")
	}
	if _, err := Parse("# Only A Title\n\nTarget: 01:00\n", timing.NewEstimator()); err == nil {
		t.Errorf("a document with no rows must be a parse error")
	}
}

func TestParseClampsPauseFloor(t *testing.T) {
	s, err := Parse("[00:00] (pause 0.2s)", timing.NewEstimator())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.Pairs[0].Speech.DurationSeconds != timing.MinPauseSeconds {
		t.Errorf("pause duration = %v, want floor %v", s.Pairs[0].Speech.DurationSeconds, timing.MinPauseSeconds)
	}
}

func TestRoundTripPreservesContent(t *testing.T) {
	est := timing.NewEstimator()
	mut := script.NewMutator(est)

	s := mut.New("Round Trip")
	s = mut.UpdateText(s, s.Pairs[0].ID, "first spoken line")
	s = mut.CommitText(s, s.Pairs[0].ID)
	s = mut.UpdateVisual(s, s.Pairs[0].ID, "opening shot")
	s = mut.InsertPause(s, 1)
	s = mut.Split(mut.UpdateText(s, s.Pairs[0].ID, "first spoken line continues here"), s.Pairs[0].ID, len("first spoken "))

	exported := Export(s)
	parsed, err := Parse(exported, est)
	if err != nil {
		t.Fatalf("Parse of own export failed: %v", err)
	}

	if parsed.Title != s.Title {
		t.Errorf("title = %q, want %q", parsed.Title, s.Title)
	}
	if len(parsed.Pairs) != len(s.Pairs) {
		t.Fatalf("rows = %d, want %d", len(parsed.Pairs), len(s.Pairs))
	}
	for i := range s.Pairs {
		wantSpeech := strings.Join(strings.Fields(s.Pairs[i].Speech.Content), " ")
		if parsed.Pairs[i].Speech.Content != wantSpeech {
			t.Errorf("row %d speech = %q, want %q", i, parsed.Pairs[i].Speech.Content, wantSpeech)
		}
		wantVisual := strings.Join(strings.Fields(s.Pairs[i].Visual.Content), " ")
		if parsed.Pairs[i].Visual.Content != wantVisual {
			t.Errorf("row %d visual = %q, want %q", i, parsed.Pairs[i].Visual.Content, wantVisual)
		}
		if s.Pairs[i].Speech.Kind != parsed.Pairs[i].Speech.Kind {
			t.Errorf("row %d kind changed: %q -> %q", i, s.Pairs[i].Speech.Kind, parsed.Pairs[i].Speech.Kind)
		}
	}
}
