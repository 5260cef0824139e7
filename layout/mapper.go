package layout

import (
	"math"

	"github.com/iw2rmb/glyphedit/internal/chars"
)

// Layout bundles the parameters that decide where text is drawn.
type Layout struct {
	Metrics     Metrics
	Bounds      Rect
	Wrap        Wrap
	AlignX      Align
	AlignY      Align
	LineSpacing float64
}

// Break wraps text to the bounds' width.
func (l Layout) Break(text string) Lines {
	return Break(text, l.Metrics, l.Bounds.W, l.Wrap)
}

func (l Layout) lineHeight() float64 {
	if l.Metrics == nil {
		return 0
	}
	return l.Metrics.LineHeight()
}

// Height returns the height of a block of n lines.
func (l Layout) Height(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*l.lineHeight() + float64(n-1)*l.LineSpacing
}

// Fits reports whether a block of n lines is strictly shorter than the bounds.
func (l Layout) Fits(n int) bool {
	return l.Height(n) < l.Bounds.H
}

// Map computes the geometry of lines, which must have been produced from text.
func (l Layout) Map(text string, lines Lines) Mapper {
	n := lines.Len()
	lh := l.lineHeight()
	top := l.AlignY.Place(l.Height(n), l.Bounds.Y, l.Bounds.H)

	geoms := make([]lineGeom, 0, n)
	for i := 0; i < n; i++ {
		li, _ := lines.Line(i)
		content := sliceBytes(text, li.StartByte, li.ContentEnd())

		xs := make([]float64, 1, li.Len()+1)
		x, visible := 0.0, 0.0
		for _, r := range content {
			if l.Metrics != nil {
				x += math.Max(l.Metrics.Advance(r), 0)
			}
			xs = append(xs, x)
			if !chars.IsSpace(r) {
				visible = x
			}
		}
		// Stale text shorter than the descriptors: pad so every index resolves.
		for len(xs) < li.Len()+1 {
			xs = append(xs, x)
		}
		xs = xs[:li.Len()+1]

		// Hanging whitespace does not take part in alignment, and a line
		// wider than the bounds starts at their edge.
		if l.Bounds.W > 0 && visible > l.Bounds.W {
			visible = l.Bounds.W
		}
		x0 := l.AlignX.Place(visible, l.Bounds.X, l.Bounds.W)
		for j := range xs {
			xs[j] += x0
		}

		y := top + float64(i)*(lh+l.LineSpacing)
		geoms = append(geoms, lineGeom{xs: xs, y: Span{Start: y, End: y + lh}})
	}
	return Mapper{lines: geoms, gen: lines.Generation()}
}

func sliceBytes(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}

type lineGeom struct {
	xs []float64
	y  Span
}

// Mapper answers index <-> position queries for one Lines snapshot.
type Mapper struct {
	lines []lineGeom
	gen   Generation
}

// Hit is the result of a nearest-index query.
type Hit struct {
	Index Index
	X     float64
	Y     Span
}

func (m Mapper) LineCount() int { return len(m.lines) }

// Generation returns the generation of the Lines the mapper was built from.
func (m Mapper) Generation() Generation { return m.gen }

// PositionOf returns the x of idx's boundary and its line's vertical band.
func (m Mapper) PositionOf(idx Index) (float64, Span, bool) {
	if idx.Line < 0 || idx.Line >= len(m.lines) {
		return 0, Span{}, false
	}
	g := m.lines[idx.Line]
	if idx.Char < 0 || idx.Char >= len(g.xs) {
		return 0, Span{}, false
	}
	return g.xs[idx.Char], g.y, true
}

// NearestIndex returns the boundary closest to p: the line whose band
// contains p.Y (or the nearest band), then the horizontally closest boundary
// on it.
func (m Mapper) NearestIndex(p Point) (Hit, bool) {
	if len(m.lines) == 0 {
		return Hit{}, false
	}
	line := m.lineAt(p.Y)
	idx, _ := m.NearestIndexOnLine(p.X, line)
	g := m.lines[line]
	return Hit{Index: idx, X: g.xs[idx.Char], Y: g.y}, true
}

func (m Mapper) lineAt(y float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, g := range m.lines {
		if g.y.Contains(y) {
			return i
		}
		if d := g.y.distance(y); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// NearestIndexOnLine returns the boundary on line closest to x. Ties go to
// the lower character.
func (m Mapper) NearestIndexOnLine(x float64, line int) (Index, bool) {
	if line < 0 || line >= len(m.lines) {
		return Index{}, false
	}
	xs := m.lines[line].xs
	best, bestDist := 0, math.Inf(1)
	for c, bx := range xs {
		if d := math.Abs(bx - x); d < bestDist {
			best, bestDist = c, d
		}
	}
	return Index{Line: line, Char: best}, true
}

// LineRect returns the rectangle covering line i's content.
func (m Mapper) LineRect(i int) (Rect, bool) {
	if i < 0 || i >= len(m.lines) {
		return Rect{}, false
	}
	g := m.lines[i]
	x0, x1 := g.xs[0], g.xs[len(g.xs)-1]
	return Rect{X: x0, Y: g.y.Start, W: x1 - x0, H: g.y.Len()}, true
}

// SelectedRects returns one rectangle per line covered by [start, end).
// start must not sort after end.
func (m Mapper) SelectedRects(start, end Index) []Rect {
	if CompareIndex(start, end) >= 0 || len(m.lines) == 0 {
		return nil
	}
	first := clampInt(start.Line, 0, len(m.lines)-1)
	last := clampInt(end.Line, 0, len(m.lines)-1)

	rects := make([]Rect, 0, last-first+1)
	for i := first; i <= last; i++ {
		g := m.lines[i]
		c0, c1 := 0, len(g.xs)-1
		if i == start.Line {
			c0 = clampInt(start.Char, 0, len(g.xs)-1)
		}
		if i == end.Line {
			c1 = clampInt(end.Char, 0, len(g.xs)-1)
		}
		if c1 < c0 {
			c1 = c0
		}
		rects = append(rects, Rect{
			X: g.xs[c0],
			Y: g.y.Start,
			W: g.xs[c1] - g.xs[c0],
			H: g.y.Len(),
		})
	}
	return rects
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
