// internal/timer/state.go
package timer

// Owner says who holds authority over the running countdown.
type Owner int

const (
	OwnerNone Owner = iota
	// OwnerLocal runs were started here and can be paused, reset or stopped.
	OwnerLocal
	// OwnerExternal runs mirror a system-level timer; the only action is to
	// ask the external facility to end it.
	OwnerExternal
)

// String returns the owner name.
func (o Owner) String() string {
	switch o {
	case OwnerNone:
		return "none"
	case OwnerLocal:
		return "local"
	case OwnerExternal:
		return "external"
	default:
		return "unknown"
	}
}

// State is the countdown state machine.
//
//	Inactive ──start──▶ Running(local) ──pause──▶ Paused ──resume──▶ Running
//	                         │                      │
//	                         ├──deadline──▶ Finished │ (overtime disabled)
//	                         └──deadline──▶ Overtime │ (overtime enabled)
//
//	Inactive ──mirror──▶ Running(external) ──deadline──▶ Finished | Overtime
//
// End returns any state to Inactive. Pause and Resume are only valid for
// local runs.
type State int

const (
	StateInactive State = iota
	StateRunning
	StatePaused
	StateFinished
	StateOvertime
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "Inactive"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateFinished:
		return "Finished"
	case StateOvertime:
		return "Overtime"
	default:
		return "Unknown"
	}
}

// IsActive returns true while a countdown is on screen.
func (s State) IsActive() bool {
	return s != StateInactive
}

// Ticking returns true when elapsed time keeps growing.
func (s State) Ticking() bool {
	return s == StateRunning || s == StateOvertime
}
