package notify

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/icons"
)

// Mirror renders sneak peeks as a single replaceable notification. A new
// sneak peek replaces the current bubble; a hide closes it.
type Mirror struct {
	notifier Notifier
	logger   *log.Logger
	id       uint32
}

// NewMirror creates a mirror sending through n.
func NewMirror(n Notifier, logger *log.Logger) *Mirror {
	return &Mirror{notifier: n, logger: logger}
}

// Run consumes sub until ctx is done or the subscription closes, then
// closes any open notification.
func (m *Mirror) Run(ctx context.Context, sub *activity.Subscription) {
	defer m.hide()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case e := <-sub.SneakPeekChanged:
			if e.Current.Visible {
				m.show(e.Current)
			} else {
				m.hide()
			}
		}
	}
}

// ID returns the open notification's id, 0 when none is shown.
func (m *Mirror) ID() uint32 {
	return m.id
}

func (m *Mirror) show(sp activity.SneakPeek) {
	n := Render(sp)
	n.ReplacesID = m.id
	id, err := m.notifier.Notify(n)
	if err != nil {
		m.logger.Warn(errmsg.Format(errmsg.OpNotifyShow, err), "kind", sp.Kind)
		return
	}
	m.id = id
}

func (m *Mirror) hide() {
	if m.id == 0 {
		return
	}
	if err := m.notifier.Close(m.id); err != nil {
		m.logger.Warn(errmsg.Format(errmsg.OpNotifyClose, err), "id", m.id)
	}
	m.id = 0
}

// Render builds the notification for a sneak peek.
func Render(sp activity.SneakPeek) Notification {
	n := Notification{
		Title:   title(sp.Kind),
		Icon:    icons.Desktop(sp.Icon),
		Timeout: -1,
		Urgency: UrgencyLow,
		Value:   NoValue,
	}
	switch sp.Kind {
	case activity.KindVolume, activity.KindBrightness, activity.KindBattery, activity.KindDownload:
		pct := int(math.Round(sp.Value * 100))
		n.Body = fmt.Sprintf("%d%%", pct)
		n.Value = pct
	case activity.KindTimer, activity.KindReminder:
		n.Urgency = UrgencyNormal
	}
	return n
}

func title(k activity.Kind) string {
	switch k {
	case activity.KindVolume:
		return "Volume"
	case activity.KindBrightness:
		return "Brightness"
	case activity.KindMusic:
		return "Now Playing"
	case activity.KindMic:
		return "Microphone"
	case activity.KindBattery:
		return "Battery"
	case activity.KindDownload:
		return "Download"
	case activity.KindTimer:
		return "Timer"
	case activity.KindReminder:
		return "Reminder"
	case activity.KindRecording:
		return "Recording"
	case activity.KindDoNotDisturb:
		return "Do Not Disturb"
	case activity.KindBluetoothAudio:
		return "Bluetooth Audio"
	case activity.KindPrivacy:
		return "Privacy"
	case activity.KindLockScreen:
		return "Locked"
	default:
		return "Peek"
	}
}
