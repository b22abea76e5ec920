package timing

import (
	"math"
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t\n  ", 0},
		{"single word", "hello", 1},
		{"multiple words", "one two three four five", 5},
		{"extra whitespace", "  one   two\nthree\t", 3},
		{"punctuation counts as part of word", "wait... what?!", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEstimate(t *testing.T) {
	e := NewEstimator()

	if got := e.Estimate(""); got != 0 {
		t.Errorf("Estimate(\"\") = %v, want 0", got)
	}

	// 5 words at 150 wpm is exactly 2 seconds.
	got := e.Estimate("one two three four five")
	if math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Estimate(5 words) = %v, want 2.0", got)
	}

	// Estimate must equal CountWords/WPM*60 for arbitrary text.
	text := "the quick brown fox jumps over the lazy dog"
	want := float64(CountWords(text)) / e.WordsPerMinute * 60
	if got := e.Estimate(text); math.Abs(got-want) > 1e-9 {
		t.Errorf("Estimate = %v, want %v", got, want)
	}
}

func TestEstimateClamped(t *testing.T) {
	e := NewEstimator()

	if got := e.EstimateClamped(""); got != MinTextSeconds {
		t.Errorf("EstimateClamped(\"\") = %v, want floor %v", got, MinTextSeconds)
	}

	// One word at 150 wpm is 0.4s, below the floor.
	if got := e.EstimateClamped("hi"); got != MinTextSeconds {
		t.Errorf("EstimateClamped(1 word) = %v, want floor %v", got, MinTextSeconds)
	}

	// Long text passes through unclamped.
	long := "one two three four five six seven eight nine ten"
	if got := e.EstimateClamped(long); got != e.Estimate(long) {
		t.Errorf("EstimateClamped(long) = %v, want %v", got, e.Estimate(long))
	}
}

func TestEstimateCustomRate(t *testing.T) {
	e := Estimator{WordsPerMinute: 100, MinTextSeconds: 0.5, MinPauseSeconds: 1}
	if got := e.Estimate("one two three four five"); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("Estimate at 100 wpm = %v, want 3.0", got)
	}

	// Non-positive rate falls back to the default instead of dividing by zero.
	e = Estimator{WordsPerMinute: 0}
	if got := e.Estimate("one two three four five"); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Estimate with zero wpm = %v, want default-rate 2.0", got)
	}
}

func TestFloorFor(t *testing.T) {
	e := NewEstimator()
	if got := e.FloorFor(true); got != MinPauseSeconds {
		t.Errorf("FloorFor(pause) = %v, want %v", got, MinPauseSeconds)
	}
	if got := e.FloorFor(false); got != MinTextSeconds {
		t.Errorf("FloorFor(text) = %v, want %v", got, MinTextSeconds)
	}
}

func TestPixelConversionRoundTrip(t *testing.T) {
	px := DurationToPixels(2.5, DefaultPixelsPerSecond)
	if px != 50 {
		t.Errorf("DurationToPixels(2.5) = %v, want 50", px)
	}
	if got := PixelsToDuration(px, DefaultPixelsPerSecond); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("PixelsToDuration(%v) = %v, want 2.5", px, got)
	}
	if got := PixelsToDuration(100, 0); got != 0 {
		t.Errorf("PixelsToDuration with zero scale = %v, want 0", got)
	}
}
