// Package repl implements the interactive parse loop behind `monkey repl`.
package repl

import (
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/monkey/internal/report"
	"github.com/agenthands/monkey/pkg/compiler/lexer"
	"github.com/agenthands/monkey/pkg/compiler/parser"
)

const prompt = ">> "

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	stmtStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("44"))
)

// Model is the Bubble Tea model of the REPL.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	history  []string
	color    bool
	logger   *slog.Logger
	quitting bool
}

// New returns a REPL model. color toggles lipgloss styling of the history.
func New(color bool, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "let x = 5;   (:q to quit)"
	ti.Prompt = prompt
	ti.Focus()

	vp := viewport.New(80, 20)

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	m := Model{
		input:    ti,
		viewport: vp,
		color:    color,
		logger:   logger,
	}
	m.viewport.SetContent(m.style(subtle, "Parsed statements and errors appear here."))
	return m
}

// Init satisfies the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update satisfies the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		if h := msg.Height - 4; h > 0 {
			m.viewport.Height = h
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == ":q" || line == ":quit" {
				m.quitting = true
				return m, tea.Quit
			}
			if line != "" {
				m.eval(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) eval(line string) {
	p := parser.New(lexer.NewScanner(line), parser.WithLogger(m.logger))
	program := p.ParseProgram()

	m.history = append(m.history, prompt+line)
	for _, s := range program.Statements {
		m.history = append(m.history, m.style(stmtStyle, s.String()))
	}
	for _, d := range p.Diagnostics() {
		m.history = append(m.history, report.FormatDiagnostic(d, m.color))
	}
	if n := len(p.Skipped()); n > 0 && len(program.Statements) == 0 && len(p.Diagnostics()) == 0 {
		m.history = append(m.history, m.style(subtle, "no statement parsed"))
	}

	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) style(s lipgloss.Style, text string) string {
	if !m.color {
		return text
	}
	return s.Render(text)
}

// History returns the lines shown in the output pane.
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

// View satisfies the tea.Model interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.style(titleStyle, "Monkey parser") + "\n" +
		m.viewport.View() + "\n" +
		m.input.View()
}
