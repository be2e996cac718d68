//go:build linux

package mpris

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/peek/internal/position"
)

const (
	propertiesInterface = "org.freedesktop.DBus.Properties"
	callTimeout         = 2 * time.Second
)

// Source follows the first MPRIS player on the session bus and reports a
// sample on every play, pause, seek or track change.
type Source struct {
	conn   *dbus.Conn
	logger *log.Logger

	name   string // well-known name, e.g. org.mpris.MediaPlayer2.spotify
	owner  string // unique name signals arrive from
	player Player
}

// NewSource connects to the session bus.
func NewSource(logger *log.Logger) (*Source, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &Source{conn: conn, logger: logger}, nil
}

// Close releases the bus connection.
func (s *Source) Close() error {
	return s.conn.Close()
}

// Run delivers samples to onSample until ctx is done. onSample is called
// from Run's goroutine.
func (s *Source) Run(ctx context.Context, onSample func(position.NowPlaying)) error {
	matches := [][]dbus.MatchOption{
		{
			dbus.WithMatchObjectPath(objectPath),
			dbus.WithMatchInterface(propertiesInterface),
			dbus.WithMatchMember("PropertiesChanged"),
		},
		{
			dbus.WithMatchObjectPath(objectPath),
			dbus.WithMatchInterface(playerInterface),
			dbus.WithMatchMember("Seeked"),
		},
		{
			dbus.WithMatchInterface("org.freedesktop.DBus"),
			dbus.WithMatchMember("NameOwnerChanged"),
		},
	}
	for _, m := range matches {
		if err := s.conn.AddMatchSignalContext(ctx, m...); err != nil {
			return fmt.Errorf("add match: %w", err)
		}
	}

	signals := make(chan *dbus.Signal, 32)
	s.conn.Signal(signals)
	defer s.conn.RemoveSignal(signals)

	if s.attach(ctx) {
		onSample(s.player.NowPlaying())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case sig, ok := <-signals:
			if !ok {
				return nil
			}
			if s.handle(ctx, sig) {
				onSample(s.player.NowPlaying())
			}
		}
	}
}

// handle applies sig and reports whether the sample changed.
func (s *Source) handle(ctx context.Context, sig *dbus.Signal) bool {
	switch sig.Name {
	case "org.freedesktop.DBus.NameOwnerChanged":
		if len(sig.Body) < 3 {
			return false
		}
		name, _ := sig.Body[0].(string)
		if !isPlayerName(name) {
			return false
		}
		if name == s.name || s.name == "" {
			s.logger.Debug("player changed", "name", name)
			if s.attach(ctx) {
				return true
			}
			// Player gone: report an empty, stopped track.
			s.player = Player{}
			return true
		}
		return false

	case propertiesInterface + ".PropertiesChanged":
		if sig.Sender != s.owner || len(sig.Body) < 2 {
			return false
		}
		if iface, _ := sig.Body[0].(string); iface != playerInterface {
			return false
		}
		changed, ok := sig.Body[1].(map[string]dbus.Variant)
		if !ok {
			return false
		}
		s.player.Apply(changed, time.Now())
		_, status := changed["PlaybackStatus"]
		_, meta := changed["Metadata"]
		_, rate := changed["Rate"]
		if status || meta || rate {
			s.refreshPosition(ctx)
		}
		return true

	case playerInterface + ".Seeked":
		if sig.Sender != s.owner || len(sig.Body) < 1 {
			return false
		}
		us, ok := toInt64(sig.Body[0])
		if !ok {
			return false
		}
		s.player.Seeked(types.Microseconds(us), time.Now())
		return true
	}
	return false
}

// attach picks a player and reads its full state. It reports false when
// no player is on the bus.
func (s *Source) attach(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var names []string
	err := s.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0).Store(&names)
	if err != nil {
		s.logger.Warn("list bus names failed", "err", err)
		return false
	}
	names = slices.DeleteFunc(names, func(n string) bool { return !isPlayerName(n) })
	if len(names) == 0 {
		s.name, s.owner = "", ""
		return false
	}
	slices.Sort(names)
	name := names[0]
	if slices.Contains(names, s.name) {
		name = s.name
	}

	var owner string
	err = s.conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.GetNameOwner", 0, name).Store(&owner)
	if err != nil {
		s.logger.Warn("get name owner failed", "name", name, "err", err)
		return false
	}

	var props map[string]dbus.Variant
	obj := s.conn.Object(name, objectPath)
	err = obj.CallWithContext(ctx, propertiesInterface+".GetAll", 0, playerInterface).Store(&props)
	if err != nil {
		s.logger.Warn("read player properties failed", "name", name, "err", err)
		return false
	}

	s.name, s.owner = name, owner
	s.player = Player{Rate: 1}
	s.player.Apply(props, time.Now())
	s.logger.Info("following player", "name", name)
	return true
}

// refreshPosition re-bases the sample; MPRIS does not signal position.
func (s *Source) refreshPosition(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var v dbus.Variant
	obj := s.conn.Object(s.name, objectPath)
	err := obj.CallWithContext(ctx, propertiesInterface+".Get", 0, playerInterface, "Position").Store(&v)
	if err != nil {
		s.logger.Debug("read position failed", "name", s.name, "err", err)
		return
	}
	if us, ok := toInt64(v.Value()); ok {
		s.player.Seeked(types.Microseconds(us), time.Now())
	}
}
