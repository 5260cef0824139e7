package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/iw2rmb/glyphedit"
	"github.com/iw2rmb/glyphedit/tui"
)

type model struct {
	editor tui.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML `file` with editor settings")
		text       = flag.String("text", "", "initial text; overrides the config file")
		logPath    = flag.String("log", "", "write debug logs to `file`")
		ascii      = flag.Bool("ascii", false, "render without colors")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(glyphedit.Banner())
		return
	}

	cfg, err := loadDemoConfig(*configPath)
	if err != nil {
		fail(err)
	}
	if *text != "" {
		cfg.Text = *text
	}
	if *ascii {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log, err := newLogger(*logPath)
	if err != nil {
		fail(fmt.Errorf("open log: %w", err))
	}
	defer func() { _ = log.Sync() }()
	log.Info("starting", zap.String("version", glyphedit.Version()))

	mcfg := cfg.model()
	mcfg.Logger = log
	mcfg.OnChange = func(s string) {
		log.Debug("text changed", zap.Int("bytes", len(s)))
	}

	p := tea.NewProgram(model{editor: tui.New(mcfg)}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
