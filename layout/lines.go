package layout

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Generation fingerprints a descriptor sequence. Two Lines with equal
// descriptors have equal generations.
type Generation uint64

// Lines is an immutable snapshot of a text's visual lines.
//
// The zero value has no lines; it is what a fresh editor state holds before
// its first update. Break always returns at least one line.
type Lines struct {
	infos []LineInfo
	gen   Generation
}

// NewLines takes ownership of infos.
func NewLines(infos []LineInfo) Lines {
	if len(infos) == 0 {
		return Lines{}
	}
	return Lines{infos: infos, gen: hashInfos(infos)}
}

func (l Lines) Len() int { return len(l.infos) }

// Line returns the i-th line.
func (l Lines) Line(i int) (LineInfo, bool) {
	if i < 0 || i >= len(l.infos) {
		return LineInfo{}, false
	}
	return l.infos[i], true
}

// Infos returns a copy of the descriptors.
func (l Lines) Infos() []LineInfo {
	return append([]LineInfo(nil), l.infos...)
}

// TotalChars returns the character count of the text the lines describe.
func (l Lines) TotalChars() int {
	if len(l.infos) == 0 {
		return 0
	}
	return l.infos[len(l.infos)-1].EndChar
}

// TotalBytes returns the byte length of the text the lines describe.
func (l Lines) TotalBytes() int {
	if len(l.infos) == 0 {
		return 0
	}
	return l.infos[len(l.infos)-1].EndByte
}

func (l Lines) Generation() Generation { return l.gen }

// Equal reports whether l and o hold identical descriptors.
func (l Lines) Equal(o Lines) bool {
	if l.gen != o.gen || len(l.infos) != len(o.infos) {
		return false
	}
	for i := range l.infos {
		if l.infos[i] != o.infos[i] {
			return false
		}
	}
	return true
}

// LastIndex returns the index just past the last character.
func (l Lines) LastIndex() Index {
	if len(l.infos) == 0 {
		return Index{}
	}
	last := len(l.infos) - 1
	return Index{Line: last, Char: l.infos[last].Len()}
}

// Contains reports whether idx addresses a boundary on one of the lines.
func (l Lines) Contains(idx Index) bool {
	li, ok := l.Line(idx.Line)
	if !ok {
		return false
	}
	return idx.Char >= 0 && idx.Char <= li.Len()
}

func hashInfos(infos []LineInfo) Generation {
	h := fnv.New64a()
	writeU64 := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		_, _ = h.Write(b[:])
	}
	writeI := func(v int) { writeU64(uint64(v)) }

	writeI(len(infos))
	for _, li := range infos {
		writeI(li.StartByte)
		writeI(li.EndByte)
		writeI(li.StartChar)
		writeI(li.EndChar)
		writeU64(uint64(li.Break))
		writeI(li.BreakBytes)
		writeI(li.BreakChars)
		writeU64(math.Float64bits(li.Width))
	}

	g := Generation(h.Sum64())
	if g == 0 {
		return 1
	}
	return g
}
