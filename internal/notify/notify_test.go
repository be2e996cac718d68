package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/autohide"
	"github.com/llehouerou/peek/internal/logging"
	"github.com/llehouerou/peek/internal/loop/looptest"
)

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

type fakeNotifier struct {
	mu     sync.Mutex
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, id)
	return nil
}

func (f *fakeNotifier) snapshot() ([]Notification, []uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notification(nil), f.sent...), append([]uint32(nil), f.closed...)
}

func TestRender(t *testing.T) {
	n := Render(activity.SneakPeek{Visible: true, Kind: activity.KindVolume, Value: 0.456, Icon: "speaker.wave.2"})
	assert.Equal(t, "Volume", n.Title)
	assert.Equal(t, "46%", n.Body)
	assert.Equal(t, 46, n.Value)
	assert.Equal(t, "audio-volume-medium", n.Icon)

	n = Render(activity.SneakPeek{Visible: true, Kind: activity.KindTimer, Value: 0.5})
	assert.Equal(t, "Timer", n.Title)
	assert.Equal(t, NoValue, n.Value)
	assert.Equal(t, UrgencyNormal, n.Urgency)
}

func TestMirror_ReplacesThenCloses(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := looptest.Start(t)
		defer stop()

		coord := activity.New(autohide.New(l), activity.DefaultSettings())
		var sub *activity.Subscription
		looptest.Do(t, l, func() { sub = coord.Subscribe() })

		fake := &fakeNotifier{}
		m := NewMirror(fake, logging.Discard())
		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan struct{})
		go func() {
			defer close(done)
			m.Run(ctx, sub)
		}()

		looptest.Do(t, l, func() {
			coord.ShowSneakPeek(activity.KindVolume, 0.3, "")
			coord.ShowSneakPeek(activity.KindBrightness, 0.8, "")
		})
		synctest.Wait()

		sent, closed := fake.snapshot()
		require.Len(t, sent, 2)
		assert.Equal(t, uint32(0), sent[0].ReplacesID)
		assert.Equal(t, uint32(1), sent[1].ReplacesID, "second sneak peek replaces the first bubble")
		assert.Empty(t, closed)

		time.Sleep(activity.GlanceDuration + time.Millisecond)
		synctest.Wait()

		_, closed = fake.snapshot()
		assert.Equal(t, []uint32{1}, closed)

		cancel()
		<-done
		_, closed = fake.snapshot()
		assert.Len(t, closed, 1, "nothing left to close on shutdown")
	})
}

func TestMirror_ClosesOnShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := looptest.Start(t)
		defer stop()

		coord := activity.New(autohide.New(l), activity.DefaultSettings())
		var sub *activity.Subscription
		looptest.Do(t, l, func() { sub = coord.Subscribe() })

		fake := &fakeNotifier{}
		m := NewMirror(fake, logging.Discard())
		done := make(chan struct{})
		go func() {
			defer close(done)
			m.Run(t.Context(), sub)
		}()

		looptest.Do(t, l, func() { coord.ShowSneakPeek(activity.KindMusic, 0, "") })
		synctest.Wait()
		looptest.Do(t, l, func() { coord.Close() })
		<-done

		_, closed := fake.snapshot()
		assert.Equal(t, []uint32{1}, closed)
	})
}

func TestMirror_NotifyErrorKeepsNoID(t *testing.T) {
	fake := &fakeNotifier{err: errors.New("no server")}
	m := NewMirror(fake, logging.Discard())

	m.show(activity.SneakPeek{Visible: true, Kind: activity.KindVolume, Value: 1})
	m.hide()

	assert.Zero(t, m.ID())
	_, closed := fake.snapshot()
	assert.Empty(t, closed)
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	id, err := n.Notify(Notification{Title: "Volume"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Close(7))
}
