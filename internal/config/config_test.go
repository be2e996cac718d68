//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/peek.log",
			expected: filepath.Join(home, "peek.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/peek.log",
			expected: "/var/log/peek.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/peek.log",
			expected: "logs/peek.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	expectedFirst := filepath.Join(xdg.ConfigHome, "peek", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if !cfg.ReplaceLegacyIndicator() {
		t.Error("ReplaceLegacyIndicator() = false, want true")
	}
	if got := cfg.ReminderDuration(); got != DefaultReminderDuration {
		t.Errorf("ReminderDuration() = %v, want %v", got, DefaultReminderDuration)
	}
	if got := cfg.IdleCollapse(); got != DefaultIdleCollapse {
		t.Errorf("IdleCollapse() = %v, want %v", got, DefaultIdleCollapse)
	}
	if got := cfg.DragGuard(); got != DefaultDragGuard {
		t.Errorf("DragGuard() = %v, want %v", got, DefaultDragGuard)
	}
	if !cfg.AllowOvertime() || !cfg.AllowExternalControl() {
		t.Error("timer options should default to true")
	}
	if got := cfg.LogLevel(); got != "info" {
		t.Errorf("LogLevel() = %q, want info", got)
	}
}

func TestLoadFrom_ParsesSections(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
[indicators]
replace_legacy = false
reminder_duration = "12s"

[panel]
idle_collapse = "500ms"

[playback]
drag_guard = "250ms"

[timer]
allow_overtime = false
allow_external_control = false

[log]
level = " DEBUG "
file = "/tmp/peek.log"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.ReplaceLegacyIndicator() {
		t.Error("ReplaceLegacyIndicator() = true, want false")
	}
	if got := cfg.ReminderDuration(); got != 12*time.Second {
		t.Errorf("ReminderDuration() = %v, want 12s", got)
	}
	if got := cfg.IdleCollapse(); got != 500*time.Millisecond {
		t.Errorf("IdleCollapse() = %v, want 500ms", got)
	}
	if got := cfg.DragGuard(); got != 250*time.Millisecond {
		t.Errorf("DragGuard() = %v, want 250ms", got)
	}
	if cfg.AllowOvertime() {
		t.Error("AllowOvertime() = true, want false")
	}
	if cfg.AllowExternalControl() {
		t.Error("AllowExternalControl() = true, want false")
	}
	if got := cfg.LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q, want debug", got)
	}
	if cfg.Log.File != "/tmp/peek.log" {
		t.Errorf("Log.File = %q, want /tmp/peek.log", cfg.Log.File)
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "a.toml", `
[panel]
idle_collapse = "5s"
[timer]
allow_overtime = false
`)
	second := writeConfig(t, dir, "b.toml", `
[panel]
idle_collapse = "2s"
`)

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if got := cfg.IdleCollapse(); got != 2*time.Second {
		t.Errorf("IdleCollapse() = %v, want 2s", got)
	}
	if cfg.AllowOvertime() {
		t.Error("earlier keys should survive when not overridden")
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "[panel\nidle_collapse = ")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid toml")
	}
}

func TestDurationGetters_InvalidFallBack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "empty", input: "", want: DefaultIdleCollapse},
		{name: "garbage", input: "soon", want: DefaultIdleCollapse},
		{name: "negative", input: "-1s", want: DefaultIdleCollapse},
		{name: "zero", input: "0s", want: DefaultIdleCollapse},
		{name: "valid", input: "750ms", want: 750 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Panel: PanelConfig{IdleCollapse: tt.input}}
			if got := cfg.IdleCollapse(); got != tt.want {
				t.Errorf("IdleCollapse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragGuard_NegativeFallsBack(t *testing.T) {
	cfg := Config{Playback: PlaybackConfig{DragGuard: "-2s"}}
	if got := cfg.DragGuard(); got != DefaultDragGuard {
		t.Errorf("DragGuard() = %v, want %v", got, DefaultDragGuard)
	}
}

func TestIconStyle(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(writeConfig(t, dir, "a.toml", "[ui]\nicons = \" Nerd \"\n"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got := cfg.IconStyle(); got != "nerd" {
		t.Errorf("IconStyle() = %q, want %q", got, "nerd")
	}

	if got := (&Config{}).IconStyle(); got != DefaultIcons {
		t.Errorf("default IconStyle() = %q, want %q", got, DefaultIcons)
	}
}
