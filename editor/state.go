package editor

import (
	"github.com/iw2rmb/glyphedit/buffer"
	"github.com/iw2rmb/glyphedit/layout"
)

// Drag classifies a pointer gesture in progress.
type Drag uint8

const (
	DragNone Drag = iota
	DragSelecting
	// DragMoveSelection is reserved for dragging selected text. Drags in
	// this state are ignored.
	DragMoveSelection
)

func (d Drag) String() string {
	switch d {
	case DragNone:
		return "none"
	case DragSelecting:
		return "selecting"
	case DragMoveSelection:
		return "move-selection"
	default:
		return "unknown"
	}
}

// State is what persists between update cycles. Cursor indices are valid
// against Lines.
type State struct {
	Cursor buffer.Cursor
	Drag   Drag
	Lines  layout.Lines
}

// NewState returns the state of an editor that has not run a cycle yet.
func NewState() State {
	return State{Cursor: buffer.Caret{}}
}

// Equal reports whether s and o hold the same values.
func (s State) Equal(o State) bool {
	return cursorOrOrigin(s.Cursor) == cursorOrOrigin(o.Cursor) &&
		s.Drag == o.Drag &&
		s.Lines.Equal(o.Lines)
}

func cursorOrOrigin(c buffer.Cursor) buffer.Cursor {
	if c == nil {
		return buffer.Caret{}
	}
	return c
}
