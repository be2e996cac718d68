// Package autohide implements slot-keyed delayed actions: "run this after d
// unless cancelled or superseded first".
//
// Every method must be called on the executor's goroutine. Timer expirations
// are posted back to the executor, so a firing and a Cancel are always
// totally ordered and a cancelled or superseded arm never runs.
package autohide

import (
	"time"

	"github.com/llehouerou/peek/internal/loop"
)

// Slot identifies a concern. At most one action is pending per slot.
type Slot string

// arm is one scheduled action. Its pointer identity distinguishes it from
// any later arm of the same slot.
type arm struct {
	timer  *time.Timer
	action func()
}

// Scheduler owns the pending actions of every slot.
type Scheduler struct {
	exec  loop.Executor
	slots map[Slot]*arm
}

// New creates a scheduler that fires actions on exec.
func New(exec loop.Executor) *Scheduler {
	return &Scheduler{
		exec:  exec,
		slots: make(map[Slot]*arm),
	}
}

// Schedule cancels whatever is pending under slot and arms action to run
// after d. A non-positive d fires on the next executor turn.
func (s *Scheduler) Schedule(slot Slot, d time.Duration, action func()) {
	s.Cancel(slot)

	a := &arm{action: action}
	s.slots[slot] = a
	a.timer = time.AfterFunc(max(d, 0), func() {
		s.exec.Post(func() { s.fire(slot, a) })
	})
}

// Cancel prevents the action pending under slot from running.
// It reports whether an action was pending.
func (s *Scheduler) Cancel(slot Slot) bool {
	a, ok := s.slots[slot]
	if !ok {
		return false
	}
	delete(s.slots, slot)
	a.timer.Stop()
	return true
}

// CancelAll cancels every pending action.
func (s *Scheduler) CancelAll() {
	for slot := range s.slots {
		s.Cancel(slot)
	}
}

// Pending reports whether slot has an action waiting to run.
func (s *Scheduler) Pending(slot Slot) bool {
	_, ok := s.slots[slot]
	return ok
}

// Len returns the number of pending actions.
func (s *Scheduler) Len() int {
	return len(s.slots)
}

func (s *Scheduler) fire(slot Slot, a *arm) {
	// A stale expiration from a cancelled or superseded arm.
	if s.slots[slot] != a {
		return
	}
	delete(s.slots, slot)
	if a.action != nil {
		a.action()
	}
}
