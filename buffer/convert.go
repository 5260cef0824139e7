package buffer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iw2rmb/glyphedit/layout"
)

var (
	// ErrIndexOutOfRange is returned for an index or offset that does not
	// exist in the lines it is converted against.
	ErrIndexOutOfRange = errors.New("buffer: index out of range")

	// ErrStaleIndex is returned when a pinned index is resolved against
	// lines other than the ones it was pinned to.
	ErrStaleIndex = errors.New("buffer: stale index")
)

// IndexAfter returns the absolute character offset of idx.
func IndexAfter(lines layout.Lines, idx layout.Index) (int, error) {
	li, ok := lines.Line(idx.Line)
	if !ok || idx.Char < 0 || idx.Char > li.Len() {
		return 0, fmt.Errorf("%w: %v in %d lines", ErrIndexOutOfRange, idx, lines.Len())
	}
	return li.StartChar + idx.Char, nil
}

// IndexBefore returns the index of absolute character offset n.
//
// An offset shared by the end of a line and the start of the next (a wrap
// without a consumed break) resolves to the start of the later line. An
// offset that falls inside a two-character line break resolves to the start
// of the following line.
func IndexBefore(lines layout.Lines, n int) (layout.Index, error) {
	if lines.Len() == 0 || n < 0 || n > lines.TotalChars() {
		return layout.Index{}, fmt.Errorf("%w: offset %d of %d", ErrIndexOutOfRange, n, lines.TotalChars())
	}

	i := sort.Search(lines.Len(), func(i int) bool {
		li, _ := lines.Line(i)
		return li.StartChar+li.Len() >= n
	})
	li, _ := lines.Line(i)

	if n == li.StartChar+li.Len() && li.Break == layout.BreakWrap && li.BreakChars == 0 && i+1 < lines.Len() {
		return layout.Index{Line: i + 1, Char: 0}, nil
	}
	if n < li.StartChar {
		n = li.StartChar
	}
	return layout.Index{Line: i, Char: n - li.StartChar}, nil
}

// ClampIndex returns the index in lines closest to idx.
func ClampIndex(lines layout.Lines, idx layout.Index) layout.Index {
	if lines.Len() == 0 {
		return layout.Index{}
	}
	line := clampInt(idx.Line, 0, lines.Len()-1)
	li, _ := lines.Line(line)
	return layout.Index{Line: line, Char: clampInt(idx.Char, 0, li.Len())}
}

// offsetOf is IndexAfter for an index that is clamped first.
func offsetOf(lines layout.Lines, idx layout.Index) int {
	n, err := IndexAfter(lines, ClampIndex(lines, idx))
	if err != nil {
		return 0
	}
	return n
}

// Anchored pairs an index with the generation of the lines it belongs to.
type Anchored struct {
	Index layout.Index
	Gen   layout.Generation
}

// Pin binds idx to lines.
func Pin(lines layout.Lines, idx layout.Index) Anchored {
	return Anchored{Index: idx, Gen: lines.Generation()}
}

// Resolve returns a's index if lines are the lines it was pinned to.
func Resolve(lines layout.Lines, a Anchored) (layout.Index, error) {
	if a.Gen != lines.Generation() {
		return layout.Index{}, fmt.Errorf("%w: pinned to %x, lines are %x", ErrStaleIndex, uint64(a.Gen), uint64(lines.Generation()))
	}
	if !lines.Contains(a.Index) {
		return layout.Index{}, fmt.Errorf("%w: %v", ErrIndexOutOfRange, a.Index)
	}
	return a.Index, nil
}

// Rebase carries a from the lines it was pinned to over to another wrap of
// the same text, keeping its absolute offset. Offsets past the end of to
// are clamped.
func Rebase(a Anchored, from, to layout.Lines) (layout.Index, error) {
	idx, err := Resolve(from, a)
	if err != nil {
		return layout.Index{}, err
	}
	n, err := IndexAfter(from, idx)
	if err != nil {
		return layout.Index{}, err
	}
	if total := to.TotalChars(); n > total {
		n = total
	}
	return IndexBefore(to, n)
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
