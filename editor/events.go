package editor

import (
	"strings"

	"github.com/iw2rmb/glyphedit/layout"
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

func (m Modifiers) Has(o Modifiers) bool { return m&o == o }

func (m Modifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, p := range []struct {
		mod  Modifiers
		name string
	}{
		{ModCtrl, "ctrl"},
		{ModShift, "shift"},
		{ModAlt, "alt"},
		{ModSuper, "super"},
	} {
		if m.Has(p.mod) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "+")
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key identifies a non-text key.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyReturn
	KeyTab
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyA
	KeyE
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyReturn:    "return",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyA:         "a",
	KeyE:         "e",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Event is one classified input event.
type Event interface {
	isEvent()
}

// PointerPress is a pointer button going down at Point.
type PointerPress struct {
	Button Button
	Point  layout.Point
	Mods   Modifiers
}

// PointerRelease is a pointer button going up.
type PointerRelease struct {
	Button Button
	Point  layout.Point
	Mods   Modifiers
}

// PointerDrag is pointer motion with Button held.
type PointerDrag struct {
	Button Button
	From   layout.Point
	To     layout.Point
	Mods   Modifiers
}

// KeyPress is a non-text key going down.
type KeyPress struct {
	Key  Key
	Mods Modifiers
}

// TextInsert carries text produced by the keyboard or a paste.
type TextInsert struct {
	Text string
	Mods Modifiers
}

func (PointerPress) isEvent()   {}
func (PointerRelease) isEvent() {}
func (PointerDrag) isEvent()    {}
func (KeyPress) isEvent()       {}
func (TextInsert) isEvent()     {}

// isArrowGlyph reports whether s is one of the private-use glyphs some
// platforms deliver as text for the arrow keys.
func isArrowGlyph(s string) bool {
	switch s {
	case "\uf700", "\uf701", "\uf702", "\uf703":
		return true
	default:
		return false
	}
}
