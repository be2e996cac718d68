package hud

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/peek/internal/autohide"
	"github.com/llehouerou/peek/internal/loop/looptest"
)

type change struct {
	name   string
	active bool
}

func TestPulses_ResetAfterDuration(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := looptest.Start(t)
		defer stop()

		var changes []change
		p := NewPulses(autohide.New(l), func(name string, active bool) {
			changes = append(changes, change{name, active})
		})

		looptest.Do(t, l, func() { p.KeyPulse(Forward) })

		time.Sleep(PressEffectDuration - time.Millisecond)
		synctest.Wait()
		looptest.Do(t, l, func() {
			assert.True(t, p.Active(PulseSkipForward))
			assert.False(t, p.Active(PulseSkipBackward))
		})

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		looptest.Do(t, l, func() {
			assert.False(t, p.Active(PulseSkipForward))
			assert.Equal(t, []change{
				{PulseSkipForward, true},
				{PulseSkipForward, false},
			}, changes)
		})
	})
}

func TestPulses_RepulseExtends(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := looptest.Start(t)
		defer stop()

		var changes int
		p := NewPulses(autohide.New(l), func(string, bool) { changes++ })

		looptest.Do(t, l, func() { p.Copied() })
		time.Sleep(time.Second)
		synctest.Wait()
		looptest.Do(t, l, func() { p.Copied() })

		time.Sleep(1500 * time.Millisecond)
		synctest.Wait()
		looptest.Do(t, l, func() { assert.True(t, p.Active(PulseCopied)) })

		time.Sleep(time.Second)
		synctest.Wait()
		looptest.Do(t, l, func() {
			assert.False(t, p.Active(PulseCopied))
			assert.Equal(t, 2, changes)
		})
	})
}

func TestPulses_IndependentSlots(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := looptest.Start(t)
		defer stop()

		p := NewPulses(autohide.New(l), nil)
		looptest.Do(t, l, func() {
			p.KeyPulse(Backward)
			p.Copied()
		})

		time.Sleep(PressEffectDuration + time.Millisecond)
		synctest.Wait()
		looptest.Do(t, l, func() {
			assert.False(t, p.Active(PulseSkipBackward))
			assert.True(t, p.Active(PulseCopied))
		})
	})
}

func TestPulses_CloseCancels(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l, stop := looptest.Start(t)
		defer stop()

		sched := autohide.New(l)
		p := NewPulses(sched, nil)
		looptest.Do(t, l, func() {
			p.Copied()
			p.Close()
			assert.False(t, p.Active(PulseCopied))
			assert.False(t, sched.Pending(PulseSlot(PulseCopied)))
		})
	})
}
