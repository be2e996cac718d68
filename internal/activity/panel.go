package activity

import (
	"github.com/llehouerou/peek/internal/suppress"
)

// ScrollCloseThreshold is the upward scroll distance (in points) that
// closes an open panel.
const ScrollCloseThreshold = 20.0

// Panel is the notch's own open/closed state. It collapses after an idle
// delay once the pointer leaves, and on an upward scroll, unless a surface
// suppresses those behaviors through the registry.
type Panel struct {
	coord *Coordinator
	reg   *suppress.Registry

	state       PanelState
	hovered     bool
	unsubscribe func()
}

// NewPanel creates a closed panel bound to the coordinator's scheduler and
// event hub.
func NewPanel(c *Coordinator, reg *suppress.Registry) *Panel {
	p := &Panel{coord: c, reg: reg}
	p.unsubscribe = reg.Subscribe(p.onSuppressionChange)
	return p
}

// State returns the current panel state.
func (p *Panel) State() PanelState {
	return p.state
}

// Hovered reports whether the pointer is over the panel.
func (p *Panel) Hovered() bool {
	return p.hovered
}

// Open opens the panel. Without hover the idle collapse is armed at once.
func (p *Panel) Open() {
	if p.state == PanelOpen {
		return
	}
	p.state = PanelOpen
	p.coord.hub.panel(PanelChange{State: PanelOpen})
	if !p.hovered {
		p.armCollapse()
	}
}

// Close closes the panel on request.
func (p *Panel) Close() {
	p.close(ReasonRequested)
}

// HoverBegan stops any pending idle collapse.
func (p *Panel) HoverBegan() {
	p.hovered = true
	p.coord.sched.Cancel(SlotPanelCollapse)
}

// HoverEnded arms the idle collapse if the panel is open.
func (p *Panel) HoverEnded() {
	p.hovered = false
	if p.state == PanelOpen {
		p.armCollapse()
	}
}

// Scroll handles a vertical scroll delta. An upward scroll past the
// threshold closes the panel unless scroll gestures are suppressed.
// It reports whether the panel closed.
func (p *Panel) Scroll(delta float64) bool {
	if p.state != PanelOpen || delta > -ScrollCloseThreshold {
		return false
	}
	if p.reg.Active(suppress.ScrollGesture) {
		return false
	}
	p.close(ReasonScroll)
	return true
}

// Release detaches the panel from the registry and cancels its collapse.
func (p *Panel) Release() {
	p.coord.sched.Cancel(SlotPanelCollapse)
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *Panel) armCollapse() {
	if p.reg.Active(suppress.AutoClose) {
		p.coord.sched.Cancel(SlotPanelCollapse)
		return
	}
	p.coord.sched.Schedule(SlotPanelCollapse, p.coord.settings.IdleCollapse(), func() {
		if p.hovered || p.reg.Active(suppress.AutoClose) {
			return
		}
		p.close(ReasonIdle)
	})
}

func (p *Panel) close(reason CloseReason) {
	p.coord.sched.Cancel(SlotPanelCollapse)
	if p.state == PanelClosed {
		return
	}
	p.state = PanelClosed
	p.coord.hub.panel(PanelChange{State: PanelClosed, Reason: reason})
}

func (p *Panel) onSuppressionChange(c suppress.ChannelChange) {
	if c.Channel != suppress.AutoClose {
		return
	}
	if c.Active {
		p.coord.sched.Cancel(SlotPanelCollapse)
		return
	}
	if p.state == PanelOpen && !p.hovered {
		p.armCollapse()
	}
}
