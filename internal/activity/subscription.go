package activity

const eventBufferSize = 16

// Subscription provides event channels for a renderer.
type Subscription struct {
	SneakPeekChanged <-chan SneakPeekChange
	ExpandedChanged  <-chan ExpandedChange
	PanelChanged     <-chan PanelChange
	Done             <-chan struct{}

	sneakCh    chan SneakPeekChange
	expandedCh chan ExpandedChange
	panelCh    chan PanelChange
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		sneakCh:    make(chan SneakPeekChange, eventBufferSize),
		expandedCh: make(chan ExpandedChange, eventBufferSize),
		panelCh:    make(chan PanelChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.SneakPeekChanged = s.sneakCh
	s.ExpandedChanged = s.expandedCh
	s.PanelChanged = s.panelCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSneakPeek sends a sneak peek change (non-blocking).
func (s *Subscription) sendSneakPeek(e SneakPeekChange) {
	select {
	case s.sneakCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendExpanded sends an expanded change (non-blocking).
func (s *Subscription) sendExpanded(e ExpandedChange) {
	select {
	case s.expandedCh <- e:
	default:
	}
}

// sendPanel sends a panel change (non-blocking).
func (s *Subscription) sendPanel(e PanelChange) {
	select {
	case s.panelCh <- e:
	default:
	}
}

// hub fans events out to every subscription.
type hub struct {
	subs []*Subscription
}

func (h *hub) subscribe() *Subscription {
	sub := newSubscription()
	h.subs = append(h.subs, sub)
	return sub
}

func (h *hub) unsubscribe(sub *Subscription) {
	for i, s := range h.subs {
		if s == sub {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			sub.close()
			return
		}
	}
}

func (h *hub) closeAll() {
	for _, sub := range h.subs {
		sub.close()
	}
	h.subs = nil
}

func (h *hub) sneakPeek(e SneakPeekChange) {
	for _, sub := range h.subs {
		sub.sendSneakPeek(e)
	}
}

func (h *hub) expanded(e ExpandedChange) {
	for _, sub := range h.subs {
		sub.sendExpanded(e)
	}
}

func (h *hub) panel(e PanelChange) {
	for _, sub := range h.subs {
		sub.sendPanel(e)
	}
}
