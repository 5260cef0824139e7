package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var (
	narrowCond = newCondition(false)
	wideCond   = newCondition(true)
)

func newCondition(eastAsian bool) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	cond.StrictEmojiNeutral = true
	return cond
}

// CellMetrics measures text in terminal cells: each line is one cell tall and
// each rune advances by its display width.
type CellMetrics struct {
	// TabWidth is the advance of '\t'. Zero means 4.
	TabWidth int

	// EastAsianWidth treats ambiguous-width runes as two cells wide.
	EastAsianWidth bool
}

func (m CellMetrics) Advance(r rune) float64 {
	return float64(m.cellWidth(r))
}

func (m CellMetrics) LineHeight() float64 { return 1 }

// Metrics implements Font so a CellMetrics can be registered directly.
func (m CellMetrics) Metrics(float64) Metrics { return m }

func (m CellMetrics) cellWidth(r rune) int {
	if r == '\t' {
		if m.TabWidth <= 0 {
			return 4
		}
		return m.TabWidth
	}

	cond := narrowCond
	if m.EastAsianWidth {
		cond = wideCond
	}
	w := cond.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(string(r))
		if fallback > w {
			w = fallback
		}
	}
	return w
}
