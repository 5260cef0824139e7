package editor

import "github.com/iw2rmb/glyphedit/layout"

// Config is the editor's style and layout configuration.
//
// A zero FontID or FontSize defers to Env.Theme.
type Config struct {
	FontID   layout.FontID `toml:"font_id"`
	FontSize float64       `toml:"font_size"`

	AlignX      layout.Align `toml:"align_x"`
	AlignY      layout.Align `toml:"align_y"`
	LineSpacing float64      `toml:"line_spacing"`
	Wrap        layout.Wrap  `toml:"wrap"`

	// RestrictToHeight rejects edits whose wrapped text would not fit
	// Bounds.H.
	RestrictToHeight bool `toml:"restrict_to_height"`

	Bounds layout.Rect `toml:"-"`
}

func DefaultConfig() Config {
	return Config{
		AlignX:           layout.AlignStart,
		AlignY:           layout.AlignStart,
		LineSpacing:      1,
		Wrap:             layout.WrapWhitespace,
		RestrictToHeight: true,
	}
}

// Theme supplies fallbacks for unset Config fields.
type Theme struct {
	FontID   layout.FontID
	FontSize float64
}

// Env is read-only context the host passes into each cycle.
type Env struct {
	// Focused is whether the editor has keyboard focus. The caret is only
	// reported when it does.
	Focused bool
	Theme   Theme
}
