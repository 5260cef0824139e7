package layout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceMetrics measures glyphs with a font.Face. Runes the face has no glyph
// for measure as the face's U+FFFD advance, or zero when that is missing too.
type FaceMetrics struct {
	Face font.Face
}

func NewFaceMetrics(face font.Face) FaceMetrics {
	return FaceMetrics{Face: face}
}

func (m FaceMetrics) Advance(r rune) float64 {
	if m.Face == nil {
		return 0
	}
	if a, ok := m.Face.GlyphAdvance(r); ok {
		return fixedToFloat(a)
	}
	if a, ok := m.Face.GlyphAdvance('�'); ok {
		return fixedToFloat(a)
	}
	return 0
}

func (m FaceMetrics) LineHeight() float64 {
	if m.Face == nil {
		return 0
	}
	return fixedToFloat(m.Face.Metrics().Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
