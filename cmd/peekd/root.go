package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/peek/internal/config"
	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/settings"
	"github.com/llehouerou/peek/internal/state"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	statePath  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "peekd",
		Short:         "Notch activity engine",
		Long:          "peekd decides what the notch shows: sneak peeks, the panel, playback position and a countdown.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/peek/config.toml)")
	root.PersistentFlags().StringVar(&opts.statePath, "state", "", "state database (default $XDG_DATA_HOME/peek/peek.db)")

	root.AddCommand(
		newRunCmd(opts),
		newMonitorCmd(opts),
		NewSettingsCmd(opts.openSettings),
	)
	return root
}

func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	return cfg, nil
}

func (o *options) openState() (*state.Manager, error) {
	var (
		mgr *state.Manager
		err error
	)
	if o.statePath != "" {
		mgr, err = state.OpenPath(o.statePath)
	} else {
		mgr, err = state.Open()
	}
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	return mgr, nil
}

// openSettings resolves settings over the config file and state store.
// The closer releases the store.
func (o *options) openSettings() (settingsClient, io.Closer, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	mgr, err := o.openState()
	if err != nil {
		return nil, nil, err
	}
	return settings.New(cfg, mgr), mgr, nil
}
