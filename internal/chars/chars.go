// Package chars provides character-indexed string helpers.
//
// A character is a Unicode scalar value (a rune). Offsets passed to and
// returned from this package count characters, not bytes.
package chars

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Count returns the number of characters in text.
func Count(text string) int {
	return utf8.RuneCountInString(text)
}

// ByteOffset returns the byte offset of the n-th character of text.
// n is clamped into [0, Count(text)].
func ByteOffset(text string, n int) int {
	if n <= 0 {
		return 0
	}
	i := 0
	for off := range text {
		if i == n {
			return off
		}
		i++
	}
	return len(text)
}

// Slice returns the substring covering characters [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	a := ByteOffset(text, start)
	b := ByteOffset(text, end)
	return text[a:b]
}

// Splice replaces characters [start, end) of text with ins.
func Splice(text string, start, end int, ins string) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	a := ByteOffset(text, start)
	b := ByteOffset(text, end)

	var sb strings.Builder
	sb.Grow(a + len(ins) + len(text) - b)
	sb.WriteString(text[:a])
	sb.WriteString(ins)
	sb.WriteString(text[b:])
	return sb.String()
}

// IsSpace reports whether r is whitespace that may be used as a soft wrap
// point. Line feeds and carriage returns are hard breaks and never qualify.
func IsSpace(r rune) bool {
	if r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsSpace(r)
}
