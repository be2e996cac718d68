package monitor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/app"
	"github.com/llehouerou/peek/internal/hud"
	"github.com/llehouerou/peek/internal/keymap"
)

// StepSize is how much one key press moves volume or brightness.
const StepSize = 0.05

// result is the outcome of a key handler.
type result struct {
	handled bool
	cmd     tea.Cmd
}

var notHandled = result{}

func handled(cmd tea.Cmd) result {
	return result{handled: true, cmd: cmd}
}

// chain runs handlers in order until one handles the action.
func chain(handlers ...func() result) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.handled {
			return true, r.cmd
		}
	}
	return false, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return false, nil
	}
	return chain(
		func() result { return m.handleGlobal(action) },
		func() result { return m.handleTimerKeys(action) },
		func() result { return m.handleHUDKeys(action) },
	)
}

func (m *Model) handleGlobal(action keymap.Action) result {
	switch action {
	case keymap.ActionQuit:
		return handled(tea.Quit)
	case keymap.ActionTogglePanel:
		if m.view.Panel == activity.PanelOpen {
			m.engine.ClosePanel()
		} else {
			m.engine.OpenPanel()
		}
		return handled(nil)
	}
	return notHandled
}

func (m *Model) handleTimerKeys(action keymap.Action) result {
	switch action {
	case keymap.ActionTimerInput:
		return handled(m.openInput())
	case keymap.ActionTimerToggle:
		return handled(m.runTimer(app.TimerToggle))
	case keymap.ActionTimerReset:
		return handled(m.runTimer(app.TimerReset))
	case keymap.ActionTimerEnd:
		return handled(m.runTimer(app.TimerEnd))
	}
	return notHandled
}

func (m *Model) handleHUDKeys(action keymap.Action) result {
	switch action {
	case keymap.ActionVolumeUp:
		m.engine.Step(hud.TargetVolume, StepSize)
	case keymap.ActionVolumeDown:
		m.engine.Step(hud.TargetVolume, -StepSize)
	case keymap.ActionBrightnessUp:
		m.engine.Step(hud.TargetBrightness, StepSize)
	case keymap.ActionBrightnessDown:
		m.engine.Step(hud.TargetBrightness, -StepSize)
	case keymap.ActionSkipBack:
		m.engine.KeyPulse(hud.Backward)
	case keymap.ActionSkipForward:
		m.engine.KeyPulse(hud.Forward)
	case keymap.ActionCopy:
		m.engine.Copied()
	default:
		return notHandled
	}
	return handled(nil)
}
