package buffer

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/glyphedit/internal/chars"
	"github.com/iw2rmb/glyphedit/layout"
)

// Engine applies edits to a text and re-wraps the result.
//
// With RestrictToHeight set, an edit whose wrapped result would be at least
// as tall as Layout.Bounds is rejected as a whole.
type Engine struct {
	Layout           layout.Layout
	RestrictToHeight bool

	// Logger receives rejected edits at debug level. Nil disables logging.
	Logger *zap.Logger
}

// Edit is the result of an accepted edit. Lines always match Text.
type Edit struct {
	Text   string
	Cursor Cursor
	Lines  layout.Lines
	Change Change
}

// Insert replaces the range covered by cursor with s. lines must have been
// produced from text.
func (e Engine) Insert(s string, cursor Cursor, text string, lines layout.Lines) (Edit, bool) {
	start, end := span(lines, cursor)
	return e.replace(start, end, s, text, lines)
}

// InsertNewline inserts a line feed.
func (e Engine) InsertNewline(cursor Cursor, text string, lines layout.Lines) (Edit, bool) {
	return e.Insert("\n", cursor, text, lines)
}

// DeleteOne applies backspace semantics: a non-empty selection is removed,
// otherwise the character before the active index is. A "\r\n" pair is
// removed together. At the start of the text nothing happens.
func (e Engine) DeleteOne(cursor Cursor, text string, lines layout.Lines) (Edit, bool) {
	if sel, ok := cursor.(Selection); ok && !sel.Empty() {
		start, end := span(lines, sel)
		return e.replace(start, end, "", text, lines)
	}

	end := offsetOf(lines, Active(cursor))
	if end == 0 {
		return Edit{}, false
	}
	start := end - 1
	if end >= 2 && chars.Slice(text, end-2, end) == "\r\n" {
		start = end - 2
	}
	return e.replace(start, end, "", text, lines)
}

func (e Engine) replace(start, end int, s, text string, lines layout.Lines) (Edit, bool) {
	if start == end && s == "" {
		return Edit{}, false
	}

	deleted := chars.Slice(text, start, end)
	next := chars.Splice(text, start, end, s)
	nextLines := e.Layout.Break(next)

	if e.rejects(lines.Len(), nextLines.Len(), s != "") {
		e.logger().Debug("edit rejected: height overflow",
			zap.Int("start", start),
			zap.Int("end", end),
			zap.Int("inserted", chars.Count(s)),
			zap.Int("lines", nextLines.Len()),
			zap.Float64("height", e.Layout.Height(nextLines.Len())),
			zap.Float64("max_height", e.Layout.Bounds.H),
		)
		return Edit{}, false
	}

	at, err := IndexBefore(nextLines, start+chars.Count(s))
	if err != nil {
		at = nextLines.LastIndex()
	}
	return Edit{
		Text:   next,
		Cursor: Caret{At: at},
		Lines:  nextLines,
		Change: Change{StartChar: start, EndChar: end, Inserted: s, Deleted: deleted},
	}, true
}

// rejects reports whether an edit producing after lines (from before lines)
// breaks the height restriction. Pure deletions are only rejected when they
// add lines, so an over-full text can always be shortened.
func (e Engine) rejects(before, after int, inserts bool) bool {
	if !e.RestrictToHeight || e.Layout.Fits(after) {
		return false
	}
	return inserts || after > before
}

func (e Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
