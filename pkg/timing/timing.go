// Package timing converts spoken text into estimated speaking time and
// estimated time into pixel lengths. Everything here is pure arithmetic;
// layout and mutation decisions live elsewhere.
package timing

import "strings"

const (
	// DefaultWordsPerMinute is the assumed speaking rate when a project
	// does not configure its own.
	DefaultWordsPerMinute = 150.0

	// MinTextSeconds keeps near-empty text rows visible.
	MinTextSeconds = 0.5

	// MinPauseSeconds is the floor for deliberate silences; a pause
	// shorter than this is not audible as a pause.
	MinPauseSeconds = 1.0

	// DefaultPixelsPerSecond governs the linear time-to-length mapping
	// used by the scroll-length timeline variant.
	DefaultPixelsPerSecond = 20.0
)

// Estimator holds the speaking-rate policy for one project.
type Estimator struct {
	WordsPerMinute  float64
	MinTextSeconds  float64
	MinPauseSeconds float64
}

// NewEstimator returns an estimator with the default rate and floors.
func NewEstimator() Estimator {
	return Estimator{
		WordsPerMinute:  DefaultWordsPerMinute,
		MinTextSeconds:  MinTextSeconds,
		MinPauseSeconds: MinPauseSeconds,
	}
}

// CountWords counts runs of non-whitespace. Empty or whitespace-only
// text has zero words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// Estimate converts text to estimated speaking seconds at the
// configured rate. Empty text estimates to zero; callers that need a
// visible row apply EstimateClamped instead.
func (e Estimator) Estimate(text string) float64 {
	wpm := e.WordsPerMinute
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	return float64(CountWords(text)) / wpm * 60
}

// EstimateClamped estimates and then applies the text floor, so that
// zero-length content still renders a visible row.
func (e Estimator) EstimateClamped(text string) float64 {
	d := e.Estimate(text)
	if d < e.MinTextSeconds {
		return e.MinTextSeconds
	}
	return d
}

// FloorFor returns the minimum stored duration for a bubble kind;
// pauses have a larger floor than text.
func (e Estimator) FloorFor(isPause bool) float64 {
	if isPause {
		return e.MinPauseSeconds
	}
	return e.MinTextSeconds
}

// DurationToPixels maps seconds to a pixel length at the given scale.
func DurationToPixels(seconds, pixelsPerSecond float64) float64 {
	return seconds * pixelsPerSecond
}

// PixelsToDuration is the inverse of DurationToPixels.
func PixelsToDuration(pixels, pixelsPerSecond float64) float64 {
	if pixelsPerSecond <= 0 {
		return 0
	}
	return pixels / pixelsPerSecond
}
