package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/glyphedit/editor"
	"github.com/iw2rmb/glyphedit/layout"
)

const cellFont layout.FontID = 1

// Config configures a Model.
type Config struct {
	// Initial text.
	Text string

	// Editor holds the editing options. Bounds follow the model's size;
	// vertical alignment and line spacing are fixed to the top and zero so
	// rows map one to one onto lines.
	Editor editor.Config

	// Metrics measures runes in cells.
	Metrics layout.CellMetrics

	Style  Style
	KeyMap KeyMap

	// OnChange is called with the new text after a cycle that changed it.
	OnChange func(text string)

	Logger *zap.Logger
}

// DefaultConfig returns a configuration for a scrolling, unrestricted
// editor.
func DefaultConfig() Config {
	ecfg := editor.DefaultConfig()
	ecfg.RestrictToHeight = false
	return Config{
		Editor:  ecfg,
		Metrics: layout.CellMetrics{TabWidth: 4},
		Style:   DefaultStyle(),
		KeyMap:  DefaultKeyMap(),
	}
}

// Model is a Bubble Tea component that edits a text.
//
// Copies of a Model share the underlying editor.Editor but each keeps its
// own editing options; they are installed before every cycle.
type Model struct {
	cfg Config
	ed  *editor.Editor

	text  string
	state editor.State
	last  editor.Result

	focused  bool
	mouse    mouseTracker
	viewport viewport.Model
}

func New(cfg Config) Model {
	fonts := layout.NewFonts()
	fonts.Add(cellFont, cfg.Metrics)

	cfg.Editor = cellConfig(cfg.Editor)
	m := Model{
		cfg:      cfg,
		ed:       editor.New(cfg.Editor, fonts, editor.WithLogger(cfg.Logger)),
		text:     cfg.Text,
		state:    editor.NewState(),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.run(nil)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Text() string { return m.text }

func (m Model) State() editor.State { return m.state }

// SetText replaces the text. The cursor keeps its offset, clamped to the
// new length.
func (m Model) SetText(s string) Model {
	m.text = s
	m.run(nil)
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.cfg.Editor.Bounds = layout.Rect{W: float64(width), H: float64(height)}
	m.run(nil)
	return m
}

// EditorConfig returns the editing options in effect.
func (m Model) EditorConfig() editor.Config { return m.cfg.Editor }

// SetEditorConfig replaces the editing options. Bounds keep following the
// model's size.
func (m Model) SetEditorConfig(cfg editor.Config) Model {
	cfg = cellConfig(cfg)
	cfg.Bounds = m.cfg.Editor.Bounds
	m.cfg.Editor = cfg
	m.run(nil)
	return m
}

func cellConfig(cfg editor.Config) editor.Config {
	cfg.FontID = cellFont
	cfg.AlignY = layout.AlignStart
	cfg.LineSpacing = 0
	return cfg
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.run(nil)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.run(nil)
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if evs := keyEvents(m.cfg.KeyMap, msg); len(evs) > 0 {
			m.run(evs)
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		if isWheel(msg) {
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		if !m.focused {
			return m, nil
		}
		if evs := m.mouse.events(msg, m.viewport.YOffset); len(evs) > 0 {
			m.run(evs)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) env() editor.Env {
	return editor.Env{
		Focused: m.focused,
		Theme:   editor.Theme{FontID: cellFont, FontSize: 1},
	}
}

// run executes one editor cycle and refreshes the view.
func (m *Model) run(events []editor.Event) {
	m.ed.SetConfig(m.cfg.Editor)
	res := m.ed.Update(m.state, m.text, events, m.env())
	m.state = res.State
	m.last = res
	if res.TextChanged {
		m.text = res.Text
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(m.text)
		}
	}
	m.viewport.SetContent(m.render())
	m.followCaret()
}

func (m *Model) followCaret() {
	if !m.last.ShowCaret {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := int(m.last.Caret.Y.Start)
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
