package timer

const eventBufferSize = 16

// Subscription delivers a snapshot on every countdown transition.
type Subscription struct {
	Changed <-chan Snapshot
	Done    <-chan struct{}

	changedCh chan Snapshot
	doneCh    chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		changedCh: make(chan Snapshot, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.Changed = s.changedCh
	s.Done = s.doneCh
	return s
}

// send delivers a snapshot (non-blocking).
func (s *Subscription) send(snap Snapshot) {
	select {
	case s.changedCh <- snap:
	default:
		// Drop if buffer full
	}
}

type hub struct {
	subs []*Subscription
}

func (h *hub) subscribe() *Subscription {
	sub := newSubscription()
	h.subs = append(h.subs, sub)
	return sub
}

func (h *hub) send(snap Snapshot) {
	for _, sub := range h.subs {
		sub.send(snap)
	}
}

func (h *hub) closeAll() {
	for _, sub := range h.subs {
		close(sub.doneCh)
	}
	h.subs = nil
}
