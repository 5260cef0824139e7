package layout

import "fmt"

// Index points at the Char-th character boundary on visual line Line.
// Both fields are 0-based. Char may equal the line's length (end of line).
//
// An Index is only meaningful against the Lines it was computed with.
type Index struct {
	Line int
	Char int
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Line, i.Char)
}

// CompareIndex orders indices lexicographically by (Line, Char).
func CompareIndex(a, b Index) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Char < b.Char {
		return -1
	}
	if a.Char > b.Char {
		return 1
	}
	return 0
}

// Less reports whether i sorts before j.
func (i Index) Less(j Index) bool { return CompareIndex(i, j) < 0 }
