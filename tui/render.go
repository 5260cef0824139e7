package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/glyphedit/layout"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelected
	cellCaret
)

// render draws every line of the text, one row per line.
func (m *Model) render() string {
	m.ed.SetConfig(m.cfg.Editor)
	lay, ok := m.ed.Layout(m.env())
	if !ok {
		return m.text
	}
	mp := lay.Map(m.text, m.state.Lines)
	infos := m.state.Lines.Infos()

	out := make([]string, 0, len(infos))
	for i, info := range infos {
		out = append(out, m.renderLine(lay, mp, i, info))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(lay layout.Layout, mp layout.Mapper, line int, info layout.LineInfo) string {
	var sb strings.Builder

	if r, ok := mp.LineRect(line); ok {
		if pad := int(r.X - lay.Bounds.X); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}

	content := ""
	if info.StartByte <= info.ContentEnd() && info.ContentEnd() <= len(m.text) {
		content = m.text[info.StartByte:info.ContentEnd()]
	}

	var (
		run     strings.Builder
		runKind cellKind
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(runKind).Render(run.String()))
		run.Reset()
	}

	c := 0
	for _, r := range content {
		x, _, _ := mp.PositionOf(layout.Index{Line: line, Char: c})
		kind := m.classify(line, x)
		if kind != runKind {
			flush()
			runKind = kind
		}
		if r == '\t' {
			run.WriteString(strings.Repeat(" ", m.tabWidth()))
		} else {
			run.WriteRune(r)
		}
		c++
	}
	flush()

	// A caret past the last glyph draws as a highlighted blank.
	if x, _, ok := mp.PositionOf(layout.Index{Line: line, Char: c}); ok && m.caretAt(line, x) {
		sb.WriteString(m.cfg.Style.Caret.Render(" "))
	}
	return sb.String()
}

func (m *Model) classify(line int, x float64) cellKind {
	if m.caretAt(line, x) {
		return cellCaret
	}
	for _, r := range m.last.Selection {
		if int(r.Y) == line && x >= r.Left() && x < r.Right() {
			return cellSelected
		}
	}
	return cellText
}

func (m *Model) caretAt(line int, x float64) bool {
	return m.last.ShowCaret && int(m.last.Caret.Y.Start) == line && m.last.Caret.X == x
}

func (m *Model) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellSelected:
		return m.cfg.Style.Selection
	case cellCaret:
		return m.cfg.Style.Caret
	default:
		return m.cfg.Style.Text
	}
}

func (m *Model) tabWidth() int {
	if m.cfg.Metrics.TabWidth > 0 {
		return m.cfg.Metrics.TabWidth
	}
	return 4
}
