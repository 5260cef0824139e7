package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/glyphedit/internal/chars"
)

// Wrap controls where a line that would exceed the max width is broken.
type Wrap int

const (
	// WrapWhitespace breaks at the last whitespace before the overflowing
	// character, consuming that whitespace as the break. A line with no
	// whitespace falls back to breaking at the overflowing character.
	WrapWhitespace Wrap = iota
	// WrapCharacter breaks immediately before the overflowing character.
	WrapCharacter
)

func (w Wrap) String() string {
	switch w {
	case WrapWhitespace:
		return "whitespace"
	case WrapCharacter:
		return "character"
	default:
		return "unknown"
	}
}

func (w Wrap) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *Wrap) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "whitespace", "word":
		*w = WrapWhitespace
	case "character", "char":
		*w = WrapCharacter
	default:
		return fmt.Errorf("layout: unknown wrap policy %q", string(b))
	}
	return nil
}

// BreakKind describes what ends a line.
type BreakKind uint8

const (
	// BreakEnd marks the last line of the text.
	BreakEnd BreakKind = iota
	// BreakNewline marks a literal "\n" or "\r\n".
	BreakNewline
	// BreakWrap marks a break induced by the max width.
	BreakWrap
)

// LineInfo describes one visual line.
//
// [StartByte, EndByte) includes the break bytes, so consecutive infos tile
// the text. The last BreakBytes bytes (BreakChars characters) of that range
// are the break itself and are not addressable by an Index.
type LineInfo struct {
	StartByte int
	EndByte   int
	StartChar int
	EndChar   int

	Break      BreakKind
	BreakBytes int
	BreakChars int

	// Width is the measured width of the line's content (break excluded).
	Width float64
}

// Len returns the number of addressable characters on the line.
func (li LineInfo) Len() int {
	return li.EndChar - li.StartChar - li.BreakChars
}

// ContentEnd returns the byte offset where the line's content stops.
func (li LineInfo) ContentEnd() int {
	return li.EndByte - li.BreakBytes
}

// Breaker yields the LineInfos of a text one at a time.
//
// A Breaker is finite and restartable: Reset rewinds it to the first line.
type Breaker struct {
	text     string
	metrics  Metrics
	maxWidth float64
	wrap     Wrap

	byteOff int
	charOff int
	done    bool
}

// NewBreaker returns a Breaker over text. maxWidth <= 0 disables wrapping.
func NewBreaker(text string, m Metrics, maxWidth float64, wrap Wrap) *Breaker {
	return &Breaker{
		text:     text,
		metrics:  m,
		maxWidth: maxWidth,
		wrap:     wrap,
	}
}

func (b *Breaker) Reset() {
	b.byteOff = 0
	b.charOff = 0
	b.done = false
}

// wrapPoint is a whitespace rune that may become a break.
type wrapPoint struct {
	byteOff int
	charOff int
	size    int
	width   float64 // line width before this rune
}

// Next returns the next line. Empty text yields exactly one empty line.
func (b *Breaker) Next() (LineInfo, bool) {
	if b.done {
		return LineInfo{}, false
	}

	start, startChar := b.byteOff, b.charOff
	width := 0.0
	var lastSpace wrapPoint
	haveSpace := false

	i, c := start, startChar
	for i < len(b.text) {
		r, size := utf8.DecodeRuneInString(b.text[i:])

		if r == '\n' || (r == '\r' && i+1 < len(b.text) && b.text[i+1] == '\n') {
			brBytes, brChars := 1, 1
			if r == '\r' {
				brBytes, brChars = 2, 2
			}
			return b.emit(LineInfo{
				StartByte:  start,
				EndByte:    i + brBytes,
				StartChar:  startChar,
				EndChar:    c + brChars,
				Break:      BreakNewline,
				BreakBytes: brBytes,
				BreakChars: brChars,
				Width:      width,
			}), true
		}

		adv := b.advance(r)
		if b.maxWidth > 0 && i > start && width+adv > b.maxWidth {
			switch {
			case b.wrap == WrapWhitespace && chars.IsSpace(r):
				// Whitespace hangs past the edge; it becomes a break only
				// once something visible overflows.
			case b.wrap == WrapWhitespace && haveSpace:
				return b.emit(LineInfo{
					StartByte:  start,
					EndByte:    lastSpace.byteOff + lastSpace.size,
					StartChar:  startChar,
					EndChar:    lastSpace.charOff + 1,
					Break:      BreakWrap,
					BreakBytes: lastSpace.size,
					BreakChars: 1,
					Width:      lastSpace.width,
				}), true
			default:
				return b.emit(LineInfo{
					StartByte: start,
					EndByte:   i,
					StartChar: startChar,
					EndChar:   c,
					Break:     BreakWrap,
					Width:     width,
				}), true
			}
		}

		if b.wrap == WrapWhitespace && chars.IsSpace(r) && i > start {
			lastSpace = wrapPoint{byteOff: i, charOff: c, size: size, width: width}
			haveSpace = true
		}
		width += adv
		i += size
		c++
	}

	b.done = true
	return LineInfo{
		StartByte: start,
		EndByte:   len(b.text),
		StartChar: startChar,
		EndChar:   c,
		Break:     BreakEnd,
		Width:     width,
	}, true
}

func (b *Breaker) emit(li LineInfo) LineInfo {
	b.byteOff = li.EndByte
	b.charOff = li.EndChar
	return li
}

func (b *Breaker) advance(r rune) float64 {
	if b.metrics == nil {
		return 0
	}
	a := b.metrics.Advance(r)
	if a < 0 {
		return 0
	}
	return a
}

// Break wraps text into a Lines snapshot.
func Break(text string, m Metrics, maxWidth float64, wrap Wrap) Lines {
	br := NewBreaker(text, m, maxWidth, wrap)
	infos := make([]LineInfo, 0, 1+len(text)/64)
	for {
		li, ok := br.Next()
		if !ok {
			break
		}
		infos = append(infos, li)
	}
	return NewLines(infos)
}
