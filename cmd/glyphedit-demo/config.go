package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/glyphedit/editor"
	"github.com/iw2rmb/glyphedit/layout"
	"github.com/iw2rmb/glyphedit/tui"
)

// demoConfig is the TOML file the demo reads with -config.
//
//	text = "hello"
//	tab_width = 8
//	east_asian_width = false
//
//	[editor]
//	align_x = "center"
//	wrap = "character"
//	restrict_to_height = true
type demoConfig struct {
	Text           string        `toml:"text"`
	TabWidth       int           `toml:"tab_width"`
	EastAsianWidth bool          `toml:"east_asian_width"`
	Editor         editor.Config `toml:"editor"`
}

func defaultDemoConfig() demoConfig {
	def := tui.DefaultConfig()
	return demoConfig{
		Text:     "Hello from glyphedit.\n\nType to edit. Drag to select.\nCtrl+A selects all, Ctrl+E jumps to the line end.\nCtrl+C to quit.",
		TabWidth: def.Metrics.TabWidth,
		Editor:   def.Editor,
	}
}

// loadDemoConfig reads path over the defaults. An empty path yields the
// defaults; unknown keys are an error.
func loadDemoConfig(path string) (demoConfig, error) {
	cfg := defaultDemoConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return demoConfig{}, fmt.Errorf("read config %q: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return demoConfig{}, fmt.Errorf("parse config %q: %s", path, strict.String())
		}
		return demoConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.TabWidth < 0 {
		return demoConfig{}, fmt.Errorf("config %q: tab_width must not be negative, got %d", path, cfg.TabWidth)
	}
	return cfg, nil
}

func (c demoConfig) model() tui.Config {
	cfg := tui.DefaultConfig()
	cfg.Text = c.Text
	cfg.Editor = c.Editor
	cfg.Metrics = layout.CellMetrics{TabWidth: c.TabWidth, EastAsianWidth: c.EastAsianWidth}
	return cfg
}
