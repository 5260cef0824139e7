package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iw2rmb/glyphedit/internal/chars"
	"github.com/iw2rmb/glyphedit/layout"
)

func newEngine(width float64, w layout.Wrap) Engine {
	return Engine{Layout: layout.Layout{
		Metrics: unit,
		Bounds:  layout.Rect{W: width, H: 1000},
		Wrap:    w,
	}}
}

func caretAt(line, char int) Caret {
	return Caret{At: layout.Index{Line: line, Char: char}}
}

func TestEngine_Insert_AtStart(t *testing.T) {
	e := newEngine(100, layout.WrapWhitespace)
	text := "ab"
	lines := e.Layout.Break(text)

	ed, ok := e.Insert("X", caretAt(0, 0), text, lines)
	if !ok {
		t.Fatalf("insert rejected")
	}
	if got, want := ed.Text, "Xab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := ed.Cursor, Cursor(caretAt(0, 1)); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !ed.Lines.Equal(e.Layout.Break(ed.Text)) {
		t.Fatalf("lines do not match new text")
	}
	want := Change{StartChar: 0, EndChar: 0, Inserted: "X"}
	if diff := cmp.Diff(want, ed.Change); diff != "" {
		t.Fatalf("change mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_Insert_ReplacesSelection(t *testing.T) {
	e := newEngine(100, layout.WrapWhitespace)
	text := "hello"
	lines := e.Layout.Break(text)
	sel := Selection{Start: layout.Index{Char: 4}, End: layout.Index{Char: 1}}

	ed, ok := e.Insert("i", sel, text, lines)
	if !ok {
		t.Fatalf("insert rejected")
	}
	if got, want := ed.Text, "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := ed.Cursor, Cursor(caretAt(0, 2)); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got, want := ed.Change.Deleted, "ell"; got != want {
		t.Fatalf("deleted=%q, want %q", got, want)
	}
}

func TestEngine_Insert_MultiLineUnicode(t *testing.T) {
	e := newEngine(100, layout.WrapWhitespace)
	text := "aπb"
	lines := e.Layout.Break(text)

	ed, ok := e.Insert("X\nテY", caretAt(0, 2), text, lines)
	if !ok {
		t.Fatalf("insert rejected")
	}
	if got, want := ed.Text, "aπX\nテYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := ed.Cursor, Cursor(caretAt(1, 2)); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestEngine_Insert_CaretFollowsWrap(t *testing.T) {
	e := newEngine(4, layout.WrapCharacter)
	text := "abcd"
	lines := e.Layout.Break(text)

	ed, ok := e.Insert("e", caretAt(0, 4), text, lines)
	if !ok {
		t.Fatalf("insert rejected")
	}
	if got, want := ed.Cursor, Cursor(caretAt(1, 1)); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestEngine_InsertNewline(t *testing.T) {
	e := newEngine(100, layout.WrapWhitespace)
	text := "ab"
	lines := e.Layout.Break(text)

	ed, ok := e.InsertNewline(caretAt(0, 1), text, lines)
	if !ok {
		t.Fatalf("newline rejected")
	}
	if got, want := ed.Text, "a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := ed.Cursor, Cursor(caretAt(1, 0)); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestEngine_DeleteOne(t *testing.T) {
	e := newEngine(100, layout.WrapWhitespace)

	cases := []struct {
		name       string
		text       string
		cursor     Cursor
		wantText   string
		wantCursor Cursor
	}{
		{"middle", "abc", caretAt(0, 2), "ac", caretAt(0, 1)},
		{"joins lines", "ab\ncd", caretAt(1, 0), "abcd", caretAt(0, 2)},
		{"crlf as a unit", "ab\r\ncd", caretAt(1, 0), "abcd", caretAt(0, 2)},
		{"selection", "hello", Selection{Start: layout.Index{Char: 1}, End: layout.Index{Char: 3}}, "hlo", caretAt(0, 1)},
		{"empty selection acts as caret", "hello", Selection{Start: layout.Index{Char: 3}, End: layout.Index{Char: 3}}, "helo", caretAt(0, 2)},
		{"nil cursor at origin is a no-op", "abc", nil, "", nil},
	}
	for _, tc := range cases {
		ed, ok := e.DeleteOne(tc.cursor, tc.text, e.Layout.Break(tc.text))
		if tc.wantCursor == nil {
			if ok {
				t.Fatalf("%s: got edit %+v, want no-op", tc.name, ed)
			}
			continue
		}
		if !ok {
			t.Fatalf("%s: delete rejected", tc.name)
		}
		if ed.Text != tc.wantText {
			t.Fatalf("%s: text=%q, want %q", tc.name, ed.Text, tc.wantText)
		}
		if ed.Cursor != tc.wantCursor {
			t.Fatalf("%s: cursor=%v, want %v", tc.name, ed.Cursor, tc.wantCursor)
		}
	}
}

func TestEngine_DeleteOne_AtOriginIsNoop(t *testing.T) {
	e := newEngine(100, layout.WrapWhitespace)
	for _, text := range []string{"abc", ""} {
		if _, ok := e.DeleteOne(caretAt(0, 0), text, e.Layout.Break(text)); ok {
			t.Fatalf("backspace at (0,0) on %q changed the text", text)
		}
	}
}

func TestEngine_LengthRelation(t *testing.T) {
	e := newEngine(6, layout.WrapWhitespace)
	text := "the quick brown fox\njumps"
	lines := e.Layout.Break(text)

	cursors := []Cursor{
		caretAt(0, 0),
		caretAt(1, 2),
		Caret{At: LineEnd(lines, layout.Index{Line: 2})},
		Caret{At: lines.LastIndex()},
		Selection{Start: layout.Index{Line: 0, Char: 2}, End: layout.Index{Line: 2, Char: 1}},
		SelectAll(lines),
	}
	inserts := []string{"", "x", "π\nテ", "  ", "\n\n"}

	for _, c := range cursors {
		for _, s := range inserts {
			ed, ok := e.Insert(s, c, text, lines)
			if !ok {
				continue
			}
			start, end := span(lines, c)
			if got, want := chars.Count(ed.Text), chars.Count(text)+chars.Count(s)-(end-start); got != want {
				t.Fatalf("insert %q at %v: count=%d, want %d", s, c, got, want)
			}
			if got, want := chars.Count(ed.Text)-chars.Count(text), ed.Change.Delta(); got != want {
				t.Fatalf("insert %q at %v: delta=%d, change says %d", s, c, got, want)
			}
			if got := ed.Change.Apply(text); got != ed.Text {
				t.Fatalf("replaying change: got %q, want %q", got, ed.Text)
			}
		}
	}
}

func TestEngine_RejectsHeightOverflow(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := Engine{
		Layout: layout.Layout{
			Metrics: layout.FixedMetrics{Width: 1, Height: 10},
			Bounds:  layout.Rect{W: 100, H: 20},
		},
		RestrictToHeight: true,
		Logger:           zap.New(core),
	}
	text := "a"
	lines := e.Layout.Break(text)
	cursor := Cursor(caretAt(0, 1))

	if ed, ok := e.InsertNewline(cursor, text, lines); ok {
		t.Fatalf("newline reaching the bounds height accepted: %+v", ed)
	}
	if got := logs.FilterMessage("edit rejected: height overflow").Len(); got != 1 {
		t.Fatalf("rejections logged=%d, want 1", got)
	}

	// Inputs are values; a rejected edit leaves them as they were.
	if text != "a" || cursor != Cursor(caretAt(0, 1)) || !lines.Equal(e.Layout.Break("a")) {
		t.Fatalf("inputs changed after rejection")
	}

	if _, ok := e.Insert("b", cursor, text, lines); !ok {
		t.Fatalf("insert that keeps one line rejected")
	}

	e.RestrictToHeight = false
	if _, ok := e.InsertNewline(cursor, text, lines); !ok {
		t.Fatalf("newline rejected with restriction off")
	}
}

func TestEngine_OverfullTextCanShrink(t *testing.T) {
	e := Engine{
		Layout: layout.Layout{
			Metrics: layout.FixedMetrics{Width: 1, Height: 10},
			Bounds:  layout.Rect{W: 100, H: 20},
		},
		RestrictToHeight: true,
	}
	text := "a\nb\nc"
	lines := e.Layout.Break(text)
	end := Caret{At: lines.LastIndex()}

	if _, ok := e.Insert("x", end, text, lines); ok {
		t.Fatalf("insert into over-full text accepted")
	}
	ed, ok := e.DeleteOne(end, text, lines)
	if !ok {
		t.Fatalf("delete in over-full text rejected")
	}
	if got, want := ed.Text, "a\nb\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
