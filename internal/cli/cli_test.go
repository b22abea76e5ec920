package cli

import "testing"

func TestValidateScriptName(t *testing.T) {
	valid := []string{"launch", "demo-day", "episode-2", "a"}
	for _, name := range valid {
		if err := ValidateScriptName(name); err != nil {
			t.Errorf("ValidateScriptName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "Launch", "demo day", "-leading", "trailing-", "double--hyphen", "dots.bad"}
	for _, name := range invalid {
		if err := ValidateScriptName(name); err == nil {
			t.Errorf("ValidateScriptName(%q) = nil, want error", name)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Demo Day", "demo-day"},
		{"  My Launch Video!  ", "my-launch-video"},
		{"Episode 2: The Return", "episode-2-the-return"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0s"},
		{12, "12s"},
		{12.5, "12.5s"},
		{60, "1m"},
		{90, "1m 30s"},
		{125, "2m 05s"},
	}
	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a very long line of text", 10); got != "a very ..." {
		t.Errorf("Truncate = %q", got)
	}
}
