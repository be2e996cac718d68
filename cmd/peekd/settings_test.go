package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/peek/internal/config"
	"github.com/llehouerou/peek/internal/settings"
	"github.com/llehouerou/peek/internal/state"
)

type closeCounter struct{ n int }

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

// runSettings executes "settings args..." against s and returns stdout.
func runSettings(t *testing.T, s settingsClient, args ...string) (string, *closeCounter, error) {
	t.Helper()
	closer := &closeCounter{}
	cmd := NewSettingsCmd(func() (settingsClient, io.Closer, error) {
		return s, closer, nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), closer, err
}

func newTestSettings() (*settings.Settings, *state.Mock) {
	store := state.NewMock()
	return settings.New(&config.Config{}, store), store
}

func TestSettingsList(t *testing.T) {
	s, _ := newTestSettings()
	require.NoError(t, s.Set(settings.KeyIdleCollapse, "5s"))

	out, closer, err := runSettings(t, s, "list")
	require.NoError(t, err)

	assert.Regexp(t, `panel\.idle_collapse\s+5s\s+override`, out)
	assert.Regexp(t, `timer\.allow_overtime\s+true\s+config`, out)
	assert.Equal(t, 1, closer.n)
}

func TestSettingsGetSetReset(t *testing.T) {
	s, _ := newTestSettings()

	_, _, err := runSettings(t, s, "set", settings.KeyAllowOvertime, "false")
	require.NoError(t, err)

	out, _, err := runSettings(t, s, "get", settings.KeyAllowOvertime)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	_, _, err = runSettings(t, s, "reset", settings.KeyAllowOvertime)
	require.NoError(t, err)

	out, _, err = runSettings(t, s, "get", settings.KeyAllowOvertime)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestSettingsSet_InvalidValue(t *testing.T) {
	s, _ := newTestSettings()

	_, _, err := runSettings(t, s, "set", settings.KeyDragGuard, "0s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to change setting 'playback.drag_guard'")
}

func TestSettingsGet_UnknownKey(t *testing.T) {
	s, _ := newTestSettings()

	_, _, err := runSettings(t, s, "get", "nope")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown setting")
}

func TestSettings_OpenFailure(t *testing.T) {
	cmd := NewSettingsCmd(func() (settingsClient, io.Closer, error) {
		return nil, nil, errors.New("Failed to open settings store: locked")
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"list"})

	assert.ErrorContains(t, cmd.Execute(), "locked")
}

func TestSettings_ArgsValidated(t *testing.T) {
	s, _ := newTestSettings()

	_, closer, err := runSettings(t, s, "set", settings.KeyAllowOvertime)
	require.Error(t, err)
	assert.Zero(t, closer.n, "store is not opened for bad arguments")
}
