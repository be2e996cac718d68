// Package monitor is a terminal view of the running engine: what the notch
// is showing, why, and what the timer and player are doing.
package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/app"
	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/hud"
	"github.com/llehouerou/peek/internal/keymap"
)

// RefreshInterval is how often the monitor polls the engine.
const RefreshInterval = 100 * time.Millisecond

const queryTimeout = time.Second

// Engine is the part of app.Engine the monitor drives.
type Engine interface {
	View(ctx context.Context) (app.View, error)
	StartTimer(ctx context.Context, name string, d time.Duration) error
	RunTimer(ctx context.Context, op app.TimerOp) (bool, error)
	Step(t hud.Target, delta float64)
	KeyPulse(dir hud.Direction)
	Copied()
	OpenPanel()
	ClosePanel()
}

type tickMsg time.Time

type viewMsg struct {
	view app.View
	err  error
}

type errMsg struct{ err error }

// LogMsg carries a line written to stderr while the monitor runs.
type LogMsg string

// Model is the bubbletea model of the monitor.
type Model struct {
	engine Engine
	keys   *keymap.Resolver

	view    app.View
	hasView bool
	err     string
	logLine string

	input       textinput.Model
	inputActive bool

	width  int
	height int
}

// New creates a monitor over engine.
func New(engine Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "25m tea"
	ti.Prompt = "timer › "
	ti.CharLimit = 64
	return Model{engine: engine, keys: keymap.Default(), input: ti, width: 60}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.fetch(), tick())

	case viewMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.view = msg.view
		m.hasView = true
		return m, nil

	case errMsg:
		m.err = msg.err.Error()
		return m, nil

	case LogMsg:
		m.logLine = string(msg)
		return m, nil

	case tea.KeyMsg:
		if m.inputActive {
			return m.updateInput(msg)
		}
		m.err = ""
		if ok, cmd := m.handleKey(msg); ok {
			return m, cmd
		}
		return m, nil
	}

	if m.inputActive {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		value := m.input.Value()
		m.closeInput()
		name, d, err := ParseTimer(value)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		return m, m.startTimer(name, d)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openInput() tea.Cmd {
	m.inputActive = true
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.inputActive = false
	m.input.Blur()
	m.input.Reset()
}

func tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) fetch() tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		v, err := engine.View(ctx)
		return viewMsg{view: v, err: err}
	}
}

func (m Model) startTimer(name string, d time.Duration) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		if err := engine.StartTimer(ctx, name, d); err != nil {
			return errMsg{errors.New(errmsg.FormatWith(errmsg.OpTimerStart, name, err))}
		}
		return tickMsg(time.Now())
	}
}

func (m Model) runTimer(op app.TimerOp) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		if _, err := engine.RunTimer(ctx, op); err != nil {
			return errMsg{errors.New(errmsg.Format(errmsg.OpTimerControl, err))}
		}
		return nil
	}
}
