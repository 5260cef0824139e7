package buffer

import "github.com/iw2rmb/glyphedit/layout"

// Cursor is either a Caret or a Selection.
type Cursor interface {
	isCursor()
}

// Caret is a collapsed cursor at one index.
type Caret struct {
	At layout.Index
}

// Selection is a directed range. Start is the anchor fixed when the
// selection began; End is the live boundary. Start may sort after End.
type Selection struct {
	Start layout.Index
	End   layout.Index
}

func (Caret) isCursor()     {}
func (Selection) isCursor() {}

func (s Selection) Empty() bool { return s.Start == s.End }

// Anchor returns the fixed end of c. A nil cursor is treated as a caret at
// the origin.
func Anchor(c Cursor) layout.Index {
	switch c := c.(type) {
	case Caret:
		return c.At
	case Selection:
		return c.Start
	default:
		return layout.Index{}
	}
}

// Active returns the moving end of c.
func Active(c Cursor) layout.Index {
	switch c := c.(type) {
	case Caret:
		return c.At
	case Selection:
		return c.End
	default:
		return layout.Index{}
	}
}

// ClampCursor clamps both ends of c into lines.
func ClampCursor(lines layout.Lines, c Cursor) Cursor {
	switch c := c.(type) {
	case Caret:
		return Caret{At: ClampIndex(lines, c.At)}
	case Selection:
		return Selection{Start: ClampIndex(lines, c.Start), End: ClampIndex(lines, c.End)}
	default:
		return Caret{}
	}
}
