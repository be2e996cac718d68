//go:build linux

package mediactl

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/godbus/dbus/v5"

	"github.com/llehouerou/peek/internal/errmsg"
)

const (
	login1Dest      = "org.freedesktop.login1"
	login1Session   = "/org/freedesktop/login1/session/auto"
	login1SetBright = "org.freedesktop.login1.Session.SetBrightness"

	backlightDir = "/sys/class/backlight"
	writeTimeout = 2 * time.Second
)

// System writes volume through wpctl (PipeWire) and brightness through
// logind over the system bus.
type System struct {
	logger     *log.Logger
	volume     *latest
	brightness *latest
}

// Verify System implements Controller at compile time.
var _ Controller = (*System)(nil)

// NewSystem creates the OS controller. Missing backends only disable the
// corresponding writes.
func NewSystem(logger *log.Logger) *System {
	s := &System{logger: logger}
	s.volume = newLatest(setVolumeWpctl, func(err error) {
		logger.Warn(errmsg.Format(errmsg.OpVolumeSet, err))
	})

	device, maxLevel, err := findBacklight(backlightDir)
	if err != nil {
		logger.Debug("brightness control unavailable", "err", err)
	}
	var conn *dbus.Conn
	if err == nil {
		conn, err = dbus.SystemBus()
		if err != nil {
			logger.Debug("system bus unavailable", "err", err)
		}
	}
	apply := func(context.Context, float64) error { return nil }
	if conn != nil {
		obj := conn.Object(login1Dest, login1Session)
		apply = func(ctx context.Context, level float64) error {
			value := uint32(level*float64(maxLevel) + 0.5)
			call := obj.CallWithContext(ctx, login1SetBright, 0, "backlight", device, value)
			return call.Err
		}
	}
	s.brightness = newLatest(apply, func(err error) {
		logger.Warn(errmsg.FormatWith(errmsg.OpBrightnessSet, device, err))
	})
	return s
}

// SetVolume queues an absolute volume write.
func (s *System) SetVolume(level float64) {
	s.volume.set(level)
}

// SetBrightness queues an absolute brightness write.
func (s *System) SetBrightness(level float64) {
	s.brightness.set(level)
}

// Close stops the writers.
func (s *System) Close() error {
	s.volume.close()
	s.brightness.close()
	return nil
}

func setVolumeWpctl(ctx context.Context, level float64) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	arg := strconv.FormatFloat(level, 'f', 2, 64)
	out, err := exec.CommandContext(ctx, "wpctl", "set-volume", "@DEFAULT_AUDIO_SINK@", arg).CombinedOutput()
	if err != nil {
		return fmt.Errorf("wpctl: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// findBacklight returns the first backlight device and its max level.
func findBacklight(dir string) (string, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, err
	}
	for _, e := range entries {
		raw, err := os.ReadFile(filepath.Join(dir, e.Name(), "max_brightness"))
		if err != nil {
			continue
		}
		maxLevel, err := strconv.Atoi(strings.TrimSpace(string(raw)))
		if err != nil || maxLevel <= 0 {
			continue
		}
		return e.Name(), maxLevel, nil
	}
	return "", 0, fmt.Errorf("no backlight device in %s", dir)
}
