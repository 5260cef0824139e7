package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/glyphedit/buffer"
	"github.com/iw2rmb/glyphedit/layout"
)

// Editor runs update cycles for one editable text.
//
// An Editor holds no per-text state; everything that persists between
// cycles lives in State. Cycles for the same text must not run
// concurrently.
type Editor struct {
	cfg   Config
	fonts layout.FontProvider
	log   *zap.Logger
}

type Option func(*Editor)

// WithLogger sets the logger used for rejected edits and other diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

func New(cfg Config, fonts layout.FontProvider, opts ...Option) *Editor {
	e := &Editor{cfg: cfg, fonts: fonts, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Config() Config { return e.cfg }

// SetConfig replaces the configuration used by subsequent cycles.
func (e *Editor) SetConfig(cfg Config) { e.cfg = cfg }

// Caret is the drawn position of the cursor: a vertical segment at X
// spanning Y.
type Caret struct {
	X float64
	Y layout.Span
}

// Result is the outcome of one update cycle.
type Result struct {
	State State
	Text  string

	// TextChanged reports whether Text differs from the input text. Changes
	// lists the splices that turned one into the other, in order.
	TextChanged bool
	Changes     []buffer.Change

	// StateChanged reports whether State differs from the input state.
	StateChanged bool

	// Caret is only meaningful when ShowCaret is set, which happens when
	// the editor is focused.
	Caret     Caret
	ShowCaret bool

	// Selection holds one rectangle per line covered by a non-empty
	// selection.
	Selection []layout.Rect
}

// Update processes events in order against st and text.
//
// The text is re-wrapped first, so a host may change it between cycles.
// When no font metrics can be resolved the cycle does nothing and returns
// its inputs.
func (e *Editor) Update(st State, text string, events []Event, env Env) Result {
	res := Result{State: st, Text: text}

	m, ok := e.metrics(env)
	if !ok {
		e.log.Warn("no font metrics, update skipped",
			zap.Uint32("font_id", uint32(e.fontID(env))),
			zap.Float64("font_size", e.fontSize(env)),
		)
		return res
	}

	lay := e.layout(m)
	c := &cycle{
		log:  e.log,
		lay:  lay,
		eng:  buffer.Engine{Layout: lay, RestrictToHeight: e.cfg.RestrictToHeight, Logger: e.log},
		text: text,
		drag: st.Drag,
	}
	c.refresh(st)

	for _, ev := range events {
		c.handle(ev)
	}

	next := State{Cursor: c.cursor, Drag: c.drag, Lines: c.lines}
	res.State = next
	res.StateChanged = !next.Equal(st)
	res.Text = c.text
	res.TextChanged = c.text != text
	res.Changes = c.changes

	mp := c.mapper()
	res.Selection = c.selectionRects(mp)
	if env.Focused {
		res.Caret = c.caret(mp)
		res.ShowCaret = true
	}
	return res
}

// Layout returns the layout a cycle run with env would use.
func (e *Editor) Layout(env Env) (layout.Layout, bool) {
	m, ok := e.metrics(env)
	if !ok {
		return layout.Layout{}, false
	}
	return e.layout(m), true
}

func (e *Editor) layout(m layout.Metrics) layout.Layout {
	return layout.Layout{
		Metrics:     m,
		Bounds:      e.cfg.Bounds,
		Wrap:        e.cfg.Wrap,
		AlignX:      e.cfg.AlignX,
		AlignY:      e.cfg.AlignY,
		LineSpacing: e.cfg.LineSpacing,
	}
}

func (e *Editor) fontID(env Env) layout.FontID {
	if e.cfg.FontID != 0 {
		return e.cfg.FontID
	}
	return env.Theme.FontID
}

func (e *Editor) fontSize(env Env) float64 {
	if e.cfg.FontSize > 0 {
		return e.cfg.FontSize
	}
	return env.Theme.FontSize
}

func (e *Editor) metrics(env Env) (layout.Metrics, bool) {
	if e.fonts == nil {
		return nil, false
	}
	return e.fonts.Metrics(e.fontID(env), e.fontSize(env))
}

// cycle is the working state of one Update call.
type cycle struct {
	log *zap.Logger
	lay layout.Layout
	eng buffer.Engine

	text    string
	lines   layout.Lines
	cursor  buffer.Cursor
	drag    Drag
	changes []buffer.Change

	mp      layout.Mapper
	mpValid bool
}

// refresh re-wraps the text and carries the cursor over when the lines
// differ from the persisted ones.
func (c *cycle) refresh(st State) {
	c.cursor = cursorOrOrigin(st.Cursor)
	c.lines = c.lay.Break(c.text)
	if c.lines.Equal(st.Lines) {
		c.lines = st.Lines
		return
	}

	switch cur := c.cursor.(type) {
	case buffer.Caret:
		c.cursor = buffer.Caret{At: c.rebase(cur.At, st.Lines)}
	case buffer.Selection:
		c.cursor = buffer.Selection{
			Start: c.rebase(cur.Start, st.Lines),
			End:   c.rebase(cur.End, st.Lines),
		}
	}
}

func (c *cycle) rebase(idx layout.Index, old layout.Lines) layout.Index {
	next, err := buffer.Rebase(buffer.Pin(old, idx), old, c.lines)
	if err == nil {
		return next
	}
	clamped := buffer.ClampIndex(c.lines, idx)
	if old.Len() > 0 {
		c.log.Debug("cursor clamped to new lines",
			zap.Stringer("from", idx),
			zap.Stringer("to", clamped),
			zap.Error(err),
		)
	}
	return clamped
}

func (c *cycle) mapper() layout.Mapper {
	if !c.mpValid {
		c.mp = c.lay.Map(c.text, c.lines)
		c.mpValid = true
	}
	return c.mp
}

func (c *cycle) apply(ed buffer.Edit, ok bool) {
	if !ok {
		return
	}
	c.text = ed.Text
	c.lines = ed.Lines
	c.cursor = ed.Cursor
	c.changes = append(c.changes, ed.Change)
	c.mpValid = false
}

func (c *cycle) handle(ev Event) {
	switch ev := ev.(type) {
	case PointerPress:
		if ev.Button != ButtonLeft {
			return
		}
		if hit, ok := c.mapper().NearestIndex(ev.Point); ok {
			c.cursor = buffer.Caret{At: hit.Index}
		}
		c.drag = DragSelecting

	case PointerDrag:
		if ev.Button != ButtonLeft {
			return
		}
		switch c.drag {
		case DragSelecting:
			if hit, ok := c.mapper().NearestIndex(ev.To); ok {
				c.cursor = buffer.Selection{Start: buffer.Anchor(c.cursor), End: hit.Index}
			}
		case DragMoveSelection:
			c.log.Debug("drag ignored: moving a selection is not supported")
		}

	case PointerRelease:
		if ev.Button == ButtonLeft {
			c.drag = DragNone
		}

	case KeyPress:
		c.key(ev)

	case TextInsert:
		if ev.Mods.Has(ModCtrl) || ev.Text == "" || isArrowGlyph(ev.Text) {
			return
		}
		c.apply(c.eng.Insert(ev.Text, c.cursor, c.text, c.lines))
	}
}

func (c *cycle) key(ev KeyPress) {
	ctrl := ev.Mods.Has(ModCtrl)

	switch ev.Key {
	case KeyBackspace:
		c.apply(c.eng.DeleteOne(c.cursor, c.text, c.lines))

	case KeyReturn:
		c.apply(c.eng.InsertNewline(c.cursor, c.text, c.lines))

	case KeyLeft:
		if ctrl {
			return
		}
		switch cur := c.cursor.(type) {
		case buffer.Caret:
			c.cursor = buffer.Caret{At: buffer.Previous(c.lines, cur.At)}
		case buffer.Selection:
			start, _ := buffer.Normalize(c.lines, cur)
			c.cursor = buffer.Caret{At: start}
		}

	case KeyRight:
		if ctrl {
			return
		}
		switch cur := c.cursor.(type) {
		case buffer.Caret:
			c.cursor = buffer.Caret{At: buffer.Next(c.lines, cur.At)}
		case buffer.Selection:
			_, end := buffer.Normalize(c.lines, cur)
			c.cursor = buffer.Caret{At: end}
		}

	case KeyUp, KeyDown:
		dir := buffer.Down
		if ev.Key == KeyUp {
			dir = buffer.Up
		}
		c.cursor = buffer.Caret{At: buffer.MoveVertical(c.mapper(), buffer.Anchor(c.cursor), dir)}

	case KeyA:
		if ctrl {
			c.cursor = buffer.SelectAll(c.lines)
		}

	case KeyE:
		if ctrl {
			c.cursor = buffer.Caret{At: buffer.LineEnd(c.lines, buffer.Active(c.cursor))}
		}
	}
}

// caret returns the drawn caret for the active end of the cursor. An index
// the lines cannot place falls back to the left edge with one line's height.
func (c *cycle) caret(mp layout.Mapper) Caret {
	if x, y, ok := mp.PositionOf(buffer.Active(c.cursor)); ok {
		return Caret{X: x, Y: y}
	}
	lh := 0.0
	if c.lay.Metrics != nil {
		lh = c.lay.Metrics.LineHeight()
	}
	b := c.lay.Bounds
	top := c.lay.AlignY.Place(lh, b.Y, b.H)
	return Caret{X: b.Left(), Y: layout.Span{Start: top, End: top + lh}}
}

func (c *cycle) selectionRects(mp layout.Mapper) []layout.Rect {
	sel, ok := c.cursor.(buffer.Selection)
	if !ok || sel.Empty() {
		return nil
	}
	start, end := buffer.Normalize(c.lines, sel)
	return mp.SelectedRects(start, end)
}
