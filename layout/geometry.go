package layout

import (
	"fmt"
	"strings"
)

// Align positions a block within an extent.
type Align int

const (
	AlignStart Align = iota
	AlignMiddle
	AlignEnd
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Align) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "start", "left", "top":
		*a = AlignStart
	case "middle", "center":
		*a = AlignMiddle
	case "end", "right", "bottom":
		*a = AlignEnd
	default:
		return fmt.Errorf("layout: unknown alignment %q", string(b))
	}
	return nil
}

// Place returns the origin of a block of the given size placed within
// [origin, origin+extent).
func (a Align) Place(size, origin, extent float64) float64 {
	switch a {
	case AlignMiddle:
		return origin + (extent-size)/2
	case AlignEnd:
		return origin + extent - size
	default:
		return origin
	}
}

type Point struct {
	X, Y float64
}

// Span is a half-open interval [Start, End).
type Span struct {
	Start, End float64
}

func (s Span) Len() float64 { return s.End - s.Start }

func (s Span) Middle() float64 { return s.Start + s.Len()/2 }

func (s Span) Contains(v float64) bool { return v >= s.Start && v < s.End }

// distance returns how far v lies outside s (0 when inside).
func (s Span) distance(v float64) float64 {
	if v < s.Start {
		return s.Start - v
	}
	if v >= s.End {
		return v - s.End
	}
	return 0
}

// Rect is an axis-aligned rectangle; Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }
