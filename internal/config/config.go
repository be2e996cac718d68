package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults applied when a key is missing or invalid.
const (
	DefaultReminderDuration = 8 * time.Second
	DefaultIdleCollapse     = 3 * time.Second
	DefaultDragGuard        = time.Second
	DefaultLogLevel         = "info"
	DefaultIcons            = "unicode"
)

type Config struct {
	Indicators IndicatorsConfig `koanf:"indicators"`
	Panel      PanelConfig      `koanf:"panel"`
	Playback   PlaybackConfig   `koanf:"playback"`
	Timer      TimerConfig      `koanf:"timer"`
	Log        LogConfig        `koanf:"log"`
	UI         UIConfig         `koanf:"ui"`
}

// IndicatorsConfig controls which sneak peeks replace the system's own.
type IndicatorsConfig struct {
	ReplaceLegacy    *bool  `koanf:"replace_legacy"`    // show volume/brightness/etc. (default: true)
	ReminderDuration string `koanf:"reminder_duration"` // e.g. "8s"
}

// PanelConfig holds the expanded panel behaviour.
type PanelConfig struct {
	IdleCollapse string `koanf:"idle_collapse"` // delay before an unhovered panel closes
}

// PlaybackConfig holds progress bar settings.
type PlaybackConfig struct {
	DragGuard string `koanf:"drag_guard"` // how long a released scrub wins over samples
}

// TimerConfig holds timer bridge options.
type TimerConfig struct {
	AllowOvertime        *bool `koanf:"allow_overtime"`         // count up past zero (default: true)
	AllowExternalControl *bool `koanf:"allow_external_control"` // allow ending external timers (default: true)
}

// UIConfig holds terminal monitor options.
type UIConfig struct {
	Icons string `koanf:"icons"` // nerd, unicode, none
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
	File  string `koanf:"file"`  // empty means stderr
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order, later ones overriding earlier.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/peek/config.toml
		filepath.Join(xdg.ConfigHome, "peek", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ReplaceLegacyIndicator returns indicators.replace_legacy, default true.
func (c *Config) ReplaceLegacyIndicator() bool {
	return boolOr(c.Indicators.ReplaceLegacy, true)
}

// ReminderDuration returns indicators.reminder_duration with defaults applied.
func (c *Config) ReminderDuration() time.Duration {
	return durationOr(c.Indicators.ReminderDuration, DefaultReminderDuration)
}

// IdleCollapse returns panel.idle_collapse with defaults applied.
func (c *Config) IdleCollapse() time.Duration {
	return durationOr(c.Panel.IdleCollapse, DefaultIdleCollapse)
}

// DragGuard returns playback.drag_guard with defaults applied.
func (c *Config) DragGuard() time.Duration {
	return durationOr(c.Playback.DragGuard, DefaultDragGuard)
}

// AllowOvertime returns timer.allow_overtime, default true.
func (c *Config) AllowOvertime() bool {
	return boolOr(c.Timer.AllowOvertime, true)
}

// AllowExternalControl returns timer.allow_external_control, default true.
func (c *Config) AllowExternalControl() bool {
	return boolOr(c.Timer.AllowExternalControl, true)
}

// LogLevel returns log.level, default "info".
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return c.Log.Level
}

// IconStyle returns ui.icons, default "unicode".
func (c *Config) IconStyle() string {
	style := strings.ToLower(strings.TrimSpace(c.UI.Icons))
	if style == "" {
		return DefaultIcons
	}
	return style
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func durationOr(s string, def time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
