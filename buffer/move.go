package buffer

import "github.com/iw2rmb/glyphedit/layout"

// Direction is a vertical movement direction.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// Previous moves idx back by one character. Crossing a line boundary lands
// at the end of the previous line; at the start of the text idx is returned
// unchanged.
func Previous(lines layout.Lines, idx layout.Index) layout.Index {
	n, err := IndexAfter(lines, idx)
	if err != nil {
		return ClampIndex(lines, idx)
	}
	for m := n - 1; m >= 0; m-- {
		p, err := IndexBefore(lines, m)
		if err != nil {
			break
		}
		if p != idx {
			return p
		}
	}
	return idx
}

// Next moves idx forward by one character, saturating at the end of the
// text.
func Next(lines layout.Lines, idx layout.Index) layout.Index {
	n, err := IndexAfter(lines, idx)
	if err != nil {
		return ClampIndex(lines, idx)
	}
	total := lines.TotalChars()
	for m := n + 1; m <= total; m++ {
		p, err := IndexBefore(lines, m)
		if err != nil {
			break
		}
		if p != idx {
			return p
		}
	}
	return idx
}

// MoveVertical moves idx one line up or down, keeping its x position as
// closely as the target line allows. The target line is clamped, so moving
// up from the first line stays on it.
func MoveVertical(m layout.Mapper, idx layout.Index, dir Direction) layout.Index {
	x, _, ok := m.PositionOf(idx)
	if !ok {
		return idx
	}
	line := clampInt(idx.Line+int(dir), 0, m.LineCount()-1)
	next, ok := m.NearestIndexOnLine(x, line)
	if !ok {
		return idx
	}
	return next
}

// SelectAll selects from the origin to the end of the text.
func SelectAll(lines layout.Lines) Selection {
	return Selection{Start: layout.Index{}, End: lines.LastIndex()}
}

// LineEnd returns the end of idx's line.
func LineEnd(lines layout.Lines, idx layout.Index) layout.Index {
	idx = ClampIndex(lines, idx)
	li, ok := lines.Line(idx.Line)
	if !ok {
		return idx
	}
	return layout.Index{Line: idx.Line, Char: li.Len()}
}

// Normalize returns sel's ends in text order.
//
// Ordering goes through absolute offsets; indices that do not belong to
// lines fall back to comparing (line, char).
func Normalize(lines layout.Lines, sel Selection) (start, end layout.Index) {
	a, errA := IndexAfter(lines, sel.Start)
	b, errB := IndexAfter(lines, sel.End)
	if errA != nil || errB != nil {
		if sel.End.Less(sel.Start) {
			return sel.End, sel.Start
		}
		return sel.Start, sel.End
	}
	if b < a {
		return sel.End, sel.Start
	}
	return sel.Start, sel.End
}

// span returns the absolute character range c covers.
func span(lines layout.Lines, c Cursor) (start, end int) {
	switch c := c.(type) {
	case Selection:
		a := offsetOf(lines, c.Start)
		b := offsetOf(lines, c.End)
		if b < a {
			a, b = b, a
		}
		return a, b
	default:
		n := offsetOf(lines, Active(c))
		return n, n
	}
}
