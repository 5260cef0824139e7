package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/glyphedit/buffer"
	"github.com/iw2rmb/glyphedit/layout"
)

// markStyle draws the selection as <...> and the caret as [...] so
// rendering can be asserted without escape sequences.
func markStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Transform(func(s string) string { return "<" + s + ">" }),
		Caret:     lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" }),
	}
}

func newTestModel(text string, width, height int) Model {
	cfg := DefaultConfig()
	cfg.Text = text
	cfg.Style = markStyle()
	return New(cfg).SetSize(width, height)
}

func rendered(m Model) string {
	return ansi.Strip(m.render())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TypingMovementAndDelete(t *testing.T) {
	m := newTestModel("ab", 20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(runes("X"))
	if got := m.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.State().Cursor; got != (buffer.Caret{At: layout.Index{Line: 0, Char: 2}}) {
		t.Fatalf("cursor after insert: got %v", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := rendered(m); got != "a[b]" {
		t.Fatalf("render: got %q, want %q", got, "a[b]")
	}
}

func TestModel_EnterTabAndSpace(t *testing.T) {
	m := newTestModel("", 20, 5)

	m, _ = m.Update(runes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, _ = m.Update(runes("b"))

	if got := m.Text(); got != "a\n\t b" {
		t.Fatalf("text: got %q, want %q", got, "a\n\t b")
	}
	if got := rendered(m); got != "a\n     b[ ]" {
		t.Fatalf("render: got %q", got)
	}
}

func TestModel_AltRunesAndPaste(t *testing.T) {
	m := newTestModel("", 20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	if got := m.Text(); got != "" {
		t.Fatalf("alt+x inserted text: %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\ntwo"), Paste: true})
	if got := m.Text(); got != "one\ntwo" {
		t.Fatalf("paste: got %q", got)
	}
	if got := m.State().Cursor; got != (buffer.Caret{At: layout.Index{Line: 1, Char: 3}}) {
		t.Fatalf("cursor after paste: got %v", got)
	}
}

func TestModel_SelectAllThenType(t *testing.T) {
	m := newTestModel("ab\ncd", 20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	if got := rendered(m); got != "<ab>\n<cd>[ ]" {
		t.Fatalf("render after select all: got %q", got)
	}

	m, _ = m.Update(runes("z"))
	if got := m.Text(); got != "z" {
		t.Fatalf("text after replacing selection: got %q", got)
	}
}

func TestModel_LineEnd(t *testing.T) {
	m := newTestModel("abc\nd", 20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.State().Cursor; got != (buffer.Caret{At: layout.Index{Line: 0, Char: 3}}) {
		t.Fatalf("cursor after end: got %v", got)
	}
}

func TestModel_MouseDragSelects(t *testing.T) {
	m := newTestModel("hello world", 20, 5)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})

	want := buffer.Selection{
		Start: layout.Index{Line: 0, Char: 1},
		End:   layout.Index{Line: 0, Char: 4},
	}
	if got := m.State().Cursor; got != want {
		t.Fatalf("cursor after drag: got %v, want %v", got, want)
	}
	if got := rendered(m); got != "h<ell>[o] world" {
		t.Fatalf("render after drag: got %q", got)
	}

	// Motion without a held button is ignored.
	m, _ = m.Update(tea.MouseMsg{X: 8, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	if got := m.State().Cursor; got != want {
		t.Fatalf("cursor after hover: got %v, want %v", got, want)
	}
}

func TestModel_WheelScrollsViewport(t *testing.T) {
	text := strings.Repeat("x\n", 9) + "x"
	m := newTestModel(text, 10, 3)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	top := m.viewport.YOffset
	if top <= 0 {
		t.Fatalf("yoffset after wheel: got %d, want > 0", top)
	}
	if got := m.State().Cursor; got != (buffer.Caret{}) {
		t.Fatalf("wheel moved the cursor: %v", got)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.State().Cursor; got != (buffer.Caret{At: layout.Index{Line: top, Char: 0}}) {
		t.Fatalf("press after scroll: got %v, want line %d", got, top)
	}
}

func TestModel_CaretFollowsTyping(t *testing.T) {
	m := newTestModel("", 10, 2)
	for i := 0; i < 4; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	if got := m.viewport.YOffset; got != 3 {
		t.Fatalf("yoffset: got %d, want 3", got)
	}
}

func TestModel_OnChange(t *testing.T) {
	var got []string
	cfg := DefaultConfig()
	cfg.Text = "a"
	cfg.OnChange = func(s string) { got = append(got, s) }
	m := New(cfg).SetSize(10, 2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(runes("b"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	_ = m

	want := []string{"ab", "a"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("OnChange calls: got %q, want %q", got, want)
	}
}

func TestModel_BlurHidesCaretAndIgnoresInput(t *testing.T) {
	m := newTestModel("ab", 20, 5).Blur()
	if m.Focused() {
		t.Fatalf("model still focused after Blur")
	}
	if got := rendered(m); got != "ab" {
		t.Fatalf("blurred render: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(runes("x"))
	if got := m.Text(); got != "ab" {
		t.Fatalf("blurred model accepted input: %q", got)
	}

	m = m.Focus()
	if got := rendered(m); got != "[a]b" {
		t.Fatalf("focused render: got %q, want %q", got, "[a]b")
	}
}

func TestModel_SelectionVisibleWhenBlurred(t *testing.T) {
	m := newTestModel("abc", 20, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	m = m.Blur()
	if got := rendered(m); got != "<abc>" {
		t.Fatalf("blurred selection render: got %q", got)
	}
}

func TestModel_WrapsToWidth(t *testing.T) {
	m := newTestModel("hello world", 5, 5)
	if got := rendered(m); got != "[h]ello\nworld" {
		t.Fatalf("wrapped render: got %q", got)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if got := rendered(m); got != "[h]ello world" {
		t.Fatalf("render after resize: got %q", got)
	}
}

func TestModel_ViewHeight(t *testing.T) {
	m := newTestModel("a\nb", 6, 4)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("view lines: got %d, want 4", len(lines))
	}
	if got := strings.TrimRight(ansi.Strip(lines[1]), " "); got != "b" {
		t.Fatalf("second row: got %q, want %q", got, "b")
	}
}

func TestModel_RestrictToHeightRejectsOverflow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Text = "ab"
	cfg.Editor.RestrictToHeight = true
	// The text must stay strictly shorter than the bounds: one row of two.
	m := New(cfg).SetSize(10, 2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Text(); got != "ab" {
		t.Fatalf("overflowing newline accepted: %q", got)
	}

	m, _ = m.Update(runes("c"))
	if got := m.Text(); got != "cab" {
		t.Fatalf("insert that fits: got %q, want %q", got, "cab")
	}
}

func TestModel_SetTextClampsCursor(t *testing.T) {
	m := newTestModel("abcdef", 20, 5)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	m = m.SetText("ab")
	if got := m.State().Cursor; got != (buffer.Caret{At: layout.Index{Line: 0, Char: 2}}) {
		t.Fatalf("cursor after SetText: got %v", got)
	}
}

func TestModel_SetEditorConfig(t *testing.T) {
	m := newTestModel("ab cdefgh", 4, 5)
	if got := rendered(m); got != "[a]b\ncdef\ngh" {
		t.Fatalf("whitespace wrap: got %q", got)
	}

	cfg := m.EditorConfig()
	cfg.Wrap = layout.WrapCharacter
	cfg.LineSpacing = 3
	m = m.SetEditorConfig(cfg)

	if got := rendered(m); got != "[a]b c\ndefg\nh" {
		t.Fatalf("character wrap: got %q", got)
	}
	if got := m.EditorConfig(); got.LineSpacing != 0 || got.Bounds.W != 4 {
		t.Fatalf("config not adjusted for cells: %+v", got)
	}
}

func TestModel_CopiesKeepTheirOwnSize(t *testing.T) {
	wide := newTestModel("hello world", 20, 5)
	narrow := wide.SetSize(5, 5)

	if got := narrow.EditorConfig().Bounds.W; got != 5 {
		t.Fatalf("narrow width: got %v, want 5", got)
	}
	if got := wide.EditorConfig().Bounds.W; got != 20 {
		t.Fatalf("resizing a copy changed the original: width %v", got)
	}

	wide, _ = wide.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if got := rendered(wide); got != "hello world[ ]" {
		t.Fatalf("original render after copy resize: got %q", got)
	}
	if got := rendered(narrow); got != "[h]ello\nworld" {
		t.Fatalf("narrow render: got %q", got)
	}
}
