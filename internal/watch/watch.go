// Package watch provides a read-only live monitor for the zjnav watch
// command: it probes the host on an interval, classifies the focused
// pane's occupant, and shows which routing mode (native action or
// keystroke injection) the router would pick right now. It never
// dispatches anything.
package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjnav/zjnav/internal/classify"
	"github.com/zjnav/zjnav/internal/command"
	"github.com/zjnav/zjnav/internal/keybind"
)

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	occupantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	editorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	nativeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Prober runs one synchronous list-clients probe.
type Prober func(ctx context.Context) ([]byte, error)

// messages
type probeResultMsg struct {
	occupant string
	known    bool
	err      error
}

type tickMsg struct{}

// Watch runs the live occupant monitor.
type Watch struct {
	Probe     Prober
	Editors   []string
	MoveMod   keybind.Mod
	ResizeMod keybind.Mod
	Interval  time.Duration // 0 defaults to one second
}

// model implements tea.Model.
type watchModel struct {
	ctx       context.Context
	probe     Prober
	editors   []string
	moveMod   keybind.Mod
	resizeMod keybind.Mod
	interval  time.Duration

	spinner    spinner.Model
	probing    bool
	probeCount int
	occupant   string
	known      bool
	lastErr    error
}

// Run starts the TUI and blocks until the user quits.
func (w *Watch) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = time.Second
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &watchModel{
		ctx:       ctx,
		probe:     w.Probe,
		editors:   w.Editors,
		moveMod:   w.MoveMod,
		resizeMod: w.ResizeMod,
		interval:  interval,
		spinner:   sp,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *watchModel) Init() tea.Cmd {
	m.probing = true
	return tea.Batch(m.spinner.Tick, m.doProbe())
}

func (m *watchModel) doProbe() tea.Cmd {
	probe := m.probe
	ctx := m.ctx
	return func() tea.Msg {
		out, err := probe(ctx)
		if err != nil {
			return probeResultMsg{err: err}
		}
		occupant, ok := classify.Occupant(string(out))
		return probeResultMsg{occupant: occupant, known: ok}
	}
}

func (m *watchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.probing {
				m.probing = true
				return m, m.doProbe()
			}
		}

	case tickMsg:
		if !m.probing {
			m.probing = true
			return m, m.doProbe()
		}

	case probeResultMsg:
		m.probing = false
		m.probeCount++
		m.occupant = msg.occupant
		m.known = msg.known
		m.lastErr = msg.err
		return m, m.scheduleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("zjnav watch"))
	b.WriteString("\n\n")

	switch {
	case m.lastErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("probe failed: %v", m.lastErr)))
		b.WriteString("\n")
	case m.probeCount == 0:
		b.WriteString(m.spinner.View())
		b.WriteString(dimStyle.Render(" probing..."))
		b.WriteString("\n")
	case !m.known:
		b.WriteString("occupant: ")
		b.WriteString(dimStyle.Render("unknown"))
		b.WriteString("\n")
		b.WriteString("routing:  ")
		b.WriteString(nativeStyle.Render("native actions"))
		b.WriteString("\n")
	default:
		b.WriteString("occupant: ")
		b.WriteString(occupantStyle.Render(m.occupant))
		b.WriteString("\n")
		b.WriteString("routing:  ")
		if classify.IsEditor(m.occupant, m.editors) {
			b.WriteString(editorStyle.Render("keystroke injection"))
			b.WriteString("\n\n")
			b.WriteString(m.renderKeybindings())
		} else {
			b.WriteString(nativeStyle.Render("native actions"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	status := fmt.Sprintf("%d probes", m.probeCount)
	if m.probing && m.probeCount > 0 {
		status = m.spinner.View() + " " + status
	}
	b.WriteString(dimStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("r probe now · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderKeybindings shows the escaped byte sequences the router would
// inject for each direction under the configured modifiers.
func (m *watchModel) renderKeybindings() string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("move (%s):   ", m.moveMod)))
	b.WriteString(bindingsLine(command.MoveFocus, m.moveMod, m.resizeMod))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("resize (%s): ", m.resizeMod)))
	b.WriteString(bindingsLine(command.Resize, m.moveMod, m.resizeMod))
	b.WriteString("\n")
	return b.String()
}

func bindingsLine(kind command.Kind, moveMod, resizeMod keybind.Mod) string {
	dirs := []command.Direction{command.Left, command.Down, command.Up, command.Right}
	parts := make([]string, 0, len(dirs))
	for _, d := range dirs {
		keys := keybind.Keystrokes(command.Command{Kind: kind, Direction: d}, moveMod, resizeMod)
		parts = append(parts, fmt.Sprintf("%s=%q", d, keys))
	}
	return strings.Join(parts, " ")
}
