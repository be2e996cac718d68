// Package settings layers user overrides from the state store over the
// config file and exposes them as typed values.
package settings

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/llehouerou/peek/internal/activity"
	"github.com/llehouerou/peek/internal/config"
	"github.com/llehouerou/peek/internal/state"
	"github.com/llehouerou/peek/internal/timer"
)

// Setting keys.
const (
	KeyReplaceLegacy        = "indicators.replace_legacy"
	KeyReminderDuration     = "indicators.reminder_duration"
	KeyIdleCollapse         = "panel.idle_collapse"
	KeyDragGuard            = "playback.drag_guard"
	KeyAllowOvertime        = "timer.allow_overtime"
	KeyAllowExternalControl = "timer.allow_external_control"
)

// cacheTTL bounds how long a typed read reuses a resolved value before it
// asks the store again.
const cacheTTL = time.Second

// ErrUnknownKey is returned for keys this package does not know.
var ErrUnknownKey = errors.New("unknown setting")

type kind int

const (
	kindBool kind = iota
	kindDuration
)

type definition struct {
	kind     kind
	fromFile func(*config.Config) string
}

var definitions = map[string]definition{
	KeyReplaceLegacy: {kind: kindBool, fromFile: func(c *config.Config) string {
		return strconv.FormatBool(c.ReplaceLegacyIndicator())
	}},
	KeyReminderDuration: {kind: kindDuration, fromFile: func(c *config.Config) string {
		return c.ReminderDuration().String()
	}},
	KeyIdleCollapse: {kind: kindDuration, fromFile: func(c *config.Config) string {
		return c.IdleCollapse().String()
	}},
	KeyDragGuard: {kind: kindDuration, fromFile: func(c *config.Config) string {
		return c.DragGuard().String()
	}},
	KeyAllowOvertime: {kind: kindBool, fromFile: func(c *config.Config) string {
		return strconv.FormatBool(c.AllowOvertime())
	}},
	KeyAllowExternalControl: {kind: kindBool, fromFile: func(c *config.Config) string {
		return strconv.FormatBool(c.AllowExternalControl())
	}},
}

// Keys returns every known key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(definitions))
	for k := range definitions {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Store is the part of the state manager holding overrides.
type Store interface {
	GetSetting(key string) (string, bool, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
}

// Entry is a resolved setting.
type Entry struct {
	Key        string
	Value      string
	Overridden bool
}

// Settings resolves values as store override, then config file, then
// built-in default. Get always asks the store. The typed getters keep each
// value for cacheTTL, so a change made by another process is seen within
// that window, and fall back to the last good value, or the config file,
// when the store fails.
type Settings struct {
	cfg   *config.Config
	store Store
	now   func() time.Time

	mu    sync.Mutex
	cache map[string]cached
}

type cached struct {
	value string
	at    time.Time
}

var (
	_ activity.Settings = (*Settings)(nil)
	_ timer.Settings    = (*Settings)(nil)
)

// New creates settings over cfg and store. Either may be nil.
func New(cfg *config.Config, store Store) *Settings {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Settings{
		cfg:   cfg,
		store: store,
		now:   time.Now,
		cache: make(map[string]cached),
	}
}

// Get returns the resolved value of key.
func (s *Settings) Get(key string) (Entry, error) {
	def, ok := definitions[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if s.store != nil {
		v, ok, err := s.store.GetSetting(key)
		if err != nil {
			return Entry{}, err
		}
		if ok {
			if _, err := parse(def, v); err == nil {
				return Entry{Key: key, Value: v, Overridden: true}, nil
			}
		}
	}
	return Entry{Key: key, Value: def.fromFile(s.cfg)}, nil
}

// All returns every setting resolved, sorted by key.
func (s *Settings) All() ([]Entry, error) {
	keys := Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e, err := s.Get(k)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Set validates and stores an override.
func (s *Settings) Set(key, value string) error {
	def, ok := definitions[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	value = strings.TrimSpace(value)
	parsed, err := parse(def, value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if s.store == nil {
		return errors.New("no settings store")
	}
	if err := s.store.SetSetting(key, parsed); err != nil {
		return err
	}
	s.forget(key)
	return nil
}

// Reset removes the override for key.
func (s *Settings) Reset(key string) error {
	if _, ok := definitions[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.DeleteSetting(key); err != nil {
		return err
	}
	s.forget(key)
	return nil
}

// Bool returns a boolean setting. Unknown keys read false.
func (s *Settings) Bool(key string) bool {
	b, _ := strconv.ParseBool(s.resolve(key))
	return b
}

// Duration returns a duration setting. Unknown keys read zero.
func (s *Settings) Duration(key string) time.Duration {
	d, _ := time.ParseDuration(s.resolve(key))
	return d
}

// resolve returns the value typed getters use. A store error keeps the
// last resolved value, or the config file's when there is none.
func (s *Settings) resolve(key string) string {
	def, ok := definitions[key]
	if !ok {
		return ""
	}
	now := s.now()

	s.mu.Lock()
	c, hit := s.cache[key]
	s.mu.Unlock()
	if hit && now.Sub(c.at) < cacheTTL {
		return c.value
	}

	e, err := s.Get(key)
	if err != nil {
		if hit {
			return c.value
		}
		return def.fromFile(s.cfg)
	}

	s.mu.Lock()
	s.cache[key] = cached{value: e.Value, at: now}
	s.mu.Unlock()
	return e.Value
}

func (s *Settings) forget(key string) {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
}

func (s *Settings) ReplaceLegacyIndicator() bool    { return s.Bool(KeyReplaceLegacy) }
func (s *Settings) ReminderDuration() time.Duration { return s.Duration(KeyReminderDuration) }
func (s *Settings) IdleCollapse() time.Duration     { return s.Duration(KeyIdleCollapse) }
func (s *Settings) DragGuard() time.Duration        { return s.Duration(KeyDragGuard) }
func (s *Settings) AllowOvertime() bool             { return s.Bool(KeyAllowOvertime) }
func (s *Settings) AllowExternalControl() bool      { return s.Bool(KeyAllowExternalControl) }

// parse validates v and returns its canonical form.
func parse(def definition, v string) (string, error) {
	switch def.kind {
	case kindBool:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", fmt.Errorf("invalid boolean %q", v)
		}
		return strconv.FormatBool(b), nil
	default:
		d, err := time.ParseDuration(v)
		if err != nil {
			return "", fmt.Errorf("invalid duration %q", v)
		}
		if d <= 0 {
			return "", fmt.Errorf("duration out of range %q", v)
		}
		return d.String(), nil
	}
}

// ensure state.Manager satisfies Store.
var _ Store = (*state.Manager)(nil)
