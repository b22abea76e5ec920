package models

// Settings represents the project configuration
type Settings struct {
	Timing TimingSettings `yaml:"timing"`
	Layout LayoutSettings `yaml:"layout"`
	UI     UISettings     `yaml:"ui"`
	Editor EditorSettings `yaml:"editor"`
}

// TimingSettings controls duration estimation
type TimingSettings struct {
	WordsPerMinute   float64 `yaml:"words_per_minute"`
	MinTextSeconds   float64 `yaml:"min_text_seconds"`
	MinPauseSeconds  float64 `yaml:"min_pause_seconds"`
	PixelsPerSecond  float64 `yaml:"pixels_per_second"`
	DefaultPauseSecs float64 `yaml:"default_pause_seconds"`
}

// LayoutSettings controls how rows are sized
type LayoutSettings struct {
	MinRowHeight float64 `yaml:"min_row_height"`
	RowGap       float64 `yaml:"row_gap"`
}

// UISettings controls UI preferences
type UISettings struct {
	AccentColor    string `yaml:"accent_color"`
	ShowInfoColumn bool   `yaml:"show_info_column"`
}

// EditorSettings controls editing behavior
type EditorSettings struct {
	AutosaveSeconds int `yaml:"autosave_seconds"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Timing: TimingSettings{
			WordsPerMinute:   150,
			MinTextSeconds:   0.5,
			MinPauseSeconds:  1.0,
			PixelsPerSecond:  20,
			DefaultPauseSecs: 2.0,
		},
		Layout: LayoutSettings{
			MinRowHeight: 48,
			RowGap:       8,
		},
		UI: UISettings{
			AccentColor:    "170",
			ShowInfoColumn: true,
		},
		Editor: EditorSettings{
			AutosaveSeconds: 3,
		},
	}
}
