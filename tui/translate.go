package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glyphedit/editor"
	"github.com/iw2rmb/glyphedit/layout"
)

// keyEvents classifies a key message. Unbound keys produce no events.
func keyEvents(km KeyMap, msg tea.KeyMsg) []editor.Event {
	// Pasted text is always literal.
	if msg.Type == tea.KeyRunes && msg.Paste {
		if len(msg.Runes) == 0 {
			return nil
		}
		return []editor.Event{editor.TextInsert{Text: string(msg.Runes)}}
	}

	switch {
	case key.Matches(msg, km.Left):
		return press(editor.KeyLeft, 0)
	case key.Matches(msg, km.Right):
		return press(editor.KeyRight, 0)
	case key.Matches(msg, km.Up):
		return press(editor.KeyUp, 0)
	case key.Matches(msg, km.Down):
		return press(editor.KeyDown, 0)
	case key.Matches(msg, km.Backspace):
		return press(editor.KeyBackspace, 0)
	case key.Matches(msg, km.Enter):
		return press(editor.KeyReturn, 0)
	case key.Matches(msg, km.SelectAll):
		return press(editor.KeyA, editor.ModCtrl)
	case key.Matches(msg, km.LineEnd):
		return press(editor.KeyE, editor.ModCtrl)
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 || msg.Alt {
			return nil
		}
		return []editor.Event{editor.TextInsert{Text: string(msg.Runes)}}
	case tea.KeySpace:
		return []editor.Event{editor.TextInsert{Text: " "}}
	case tea.KeyTab:
		return []editor.Event{editor.TextInsert{Text: "\t"}}
	default:
		return nil
	}
}

func press(k editor.Key, mods editor.Modifiers) []editor.Event {
	return []editor.Event{editor.KeyPress{Key: k, Mods: mods}}
}

// mouseTracker turns Bubble Tea mouse messages into pointer events. It
// remembers the last point so drags carry where they came from.
type mouseTracker struct {
	last    layout.Point
	pressed bool
}

// events converts msg, whose coordinates are relative to the model's top
// left cell, into pointer events in content space. yOffset is the number
// of rows scrolled off the top.
func (mt *mouseTracker) events(msg tea.MouseMsg, yOffset int) []editor.Event {
	// Aim at the middle of the row so the hit lands inside its band.
	p := layout.Point{X: float64(msg.X), Y: float64(msg.Y+yOffset) + 0.5}
	mods := mouseMods(msg)

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		mt.last, mt.pressed = p, true
		return []editor.Event{editor.PointerPress{Button: editor.ButtonLeft, Point: p, Mods: mods}}

	case tea.MouseActionMotion:
		if !mt.pressed || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		from := mt.last
		mt.last = p
		return []editor.Event{editor.PointerDrag{Button: editor.ButtonLeft, From: from, To: p, Mods: mods}}

	case tea.MouseActionRelease:
		if !mt.pressed {
			return nil
		}
		mt.pressed = false
		return []editor.Event{editor.PointerRelease{Button: editor.ButtonLeft, Point: p, Mods: mods}}
	}
	return nil
}

func mouseMods(msg tea.MouseMsg) editor.Modifiers {
	var mods editor.Modifiers
	if msg.Ctrl {
		mods |= editor.ModCtrl
	}
	if msg.Shift {
		mods |= editor.ModShift
	}
	if msg.Alt {
		mods |= editor.ModAlt
	}
	return mods
}
