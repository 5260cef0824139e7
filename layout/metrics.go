package layout

// Metrics measures glyphs for one font at one size.
//
// Implementations must be deterministic: the same rune always measures the
// same, otherwise re-wrapping unchanged text would not be stable.
type Metrics interface {
	Advance(r rune) float64
	LineHeight() float64
}

// FontID identifies a font registered with a FontProvider. The zero value
// means "unset".
type FontID uint32

// Font produces metrics for a requested size.
type Font interface {
	Metrics(size float64) Metrics
}

// FontFunc adapts a function to Font.
type FontFunc func(size float64) Metrics

func (f FontFunc) Metrics(size float64) Metrics { return f(size) }

// Static returns a Font whose metrics do not depend on the size.
func Static(m Metrics) Font {
	return FontFunc(func(float64) Metrics { return m })
}

// FontProvider resolves a font id and size to metrics.
type FontProvider interface {
	Metrics(id FontID, size float64) (Metrics, bool)
}

// Fonts is an ordered FontProvider. Lookups for an unknown (or zero) id fall
// back to the first registered font.
type Fonts struct {
	ids   []FontID
	fonts map[FontID]Font
}

func NewFonts() *Fonts {
	return &Fonts{fonts: make(map[FontID]Font)}
}

// Add registers f under id, replacing any previous registration.
func (fs *Fonts) Add(id FontID, f Font) {
	if fs.fonts == nil {
		fs.fonts = make(map[FontID]Font)
	}
	if _, ok := fs.fonts[id]; !ok {
		fs.ids = append(fs.ids, id)
	}
	fs.fonts[id] = f
}

// IDs returns registered ids in registration order.
func (fs *Fonts) IDs() []FontID {
	if fs == nil {
		return nil
	}
	return append([]FontID(nil), fs.ids...)
}

func (fs *Fonts) Metrics(id FontID, size float64) (Metrics, bool) {
	if fs == nil || len(fs.ids) == 0 {
		return nil, false
	}
	f, ok := fs.fonts[id]
	if !ok {
		f = fs.fonts[fs.ids[0]]
	}
	m := f.Metrics(size)
	if m == nil {
		return nil, false
	}
	return m, true
}

// FixedMetrics gives every glyph the same advance.
type FixedMetrics struct {
	Width  float64
	Height float64
}

func (m FixedMetrics) Advance(rune) float64 { return m.Width }

func (m FixedMetrics) LineHeight() float64 { return m.Height }
