package activity

// SneakPeek is the small, short-lived status glyph in the shared region.
type SneakPeek struct {
	Visible bool
	Kind    Kind
	Value   float64 // in [0, 1]; meaning depends on Kind
	Icon    string  // optional symbol id
}

// ExpandedItem is the larger overlay variant for higher-salience events.
type ExpandedItem struct {
	Visible bool
	Kind    Kind
	Value   float64
	Browser BrowserVariant
}

// PanelState is the open/closed state of the notch panel.
type PanelState int

const (
	PanelClosed PanelState = iota
	PanelOpen
)

// String returns the panel state name.
func (p PanelState) String() string {
	if p == PanelOpen {
		return "open"
	}
	return "closed"
}

// SneakPeekChange is emitted whenever the sneak peek record changes.
// A re-show with a new payload emits a single change with both sides
// visible: there is no intermediate hidden state.
type SneakPeekChange struct {
	Previous SneakPeek
	Current  SneakPeek
}

// ExpandedChange is emitted whenever the expanded item changes.
type ExpandedChange struct {
	Previous ExpandedItem
	Current  ExpandedItem
}

// PanelChange is emitted when the panel opens or closes.
type PanelChange struct {
	State  PanelState
	Reason CloseReason
}

// CloseReason says why the panel closed. Zero for openings.
type CloseReason int

const (
	ReasonNone CloseReason = iota
	ReasonRequested
	ReasonIdle
	ReasonScroll
)

// String returns the reason name.
func (r CloseReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonRequested:
		return "requested"
	case ReasonIdle:
		return "idle"
	case ReasonScroll:
		return "scroll"
	default:
		return "unknown"
	}
}
