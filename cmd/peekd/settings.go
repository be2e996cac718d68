package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/settings"
)

type settingsClient interface {
	Get(key string) (settings.Entry, error)
	All() ([]settings.Entry, error)
	Set(key, value string) error
	Reset(key string) error
}

type openSettingsFunc func() (settingsClient, io.Closer, error)

const settingsCommandLong = `Inspect and override settings.

Overrides are stored in the state database and take precedence over the
config file. They are picked up by a running daemon on its next read.

EXAMPLES:
    peekd settings list
    peekd settings get panel.idle_collapse
    peekd settings set timer.allow_overtime false
    peekd settings reset timer.allow_overtime`

// NewSettingsCmd creates the settings command. open is called once per
// invocation.
func NewSettingsCmd(open openSettingsFunc) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and override settings",
		Long:  settingsCommandLong,
	}

	settingsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show every setting and where it comes from",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSettings(open, func(c settingsClient) error {
					return runList(c, cmd.OutOrStdout())
				})
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Show one setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withSettings(open, func(c settingsClient) error {
					return runGet(c, cmd.OutOrStdout(), args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Override a setting",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				return withSettings(open, func(c settingsClient) error {
					return runSet(c, args[0], args[1])
				})
			},
		},
		&cobra.Command{
			Use:   "reset <key>",
			Short: "Remove an override",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return withSettings(open, func(c settingsClient) error {
					return runReset(c, args[0])
				})
			},
		},
	)
	return settingsCmd
}

func withSettings(open openSettingsFunc, fn func(settingsClient) error) error {
	c, closer, err := open()
	if err != nil {
		return err
	}
	defer closer.Close()
	return fn(c)
}

func runList(c settingsClient, w io.Writer) error {
	entries, err := c.All()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSettingsList, err))
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Value, source(e))
	}
	return tw.Flush()
}

func runGet(c settingsClient, w io.Writer, key string) error {
	e, err := c.Get(key)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpSettingGet, key, err))
	}
	_, err = fmt.Fprintln(w, e.Value)
	return err
}

func runSet(c settingsClient, key, value string) error {
	if err := c.Set(key, value); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpSettingSet, key, err))
	}
	return nil
}

func runReset(c settingsClient, key string) error {
	if err := c.Reset(key); err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpSettingReset, key, err))
	}
	return nil
}

func source(e settings.Entry) string {
	if e.Overridden {
		return "override"
	}
	return "config"
}
