package main

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/peek/internal/stderr"
	"github.com/llehouerou/peek/internal/ui/monitor"
)

func newMonitorCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Run the engine with a terminal view of its state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := startDaemon(ctx, opts)
			if err != nil {
				return err
			}
			defer d.Close()

			p := tea.NewProgram(monitor.New(d.Engine), tea.WithAltScreen(), tea.WithContext(ctx))

			// Log lines written to stderr would tear the view; show them in it.
			capture, err := stderr.Start(func(line string) {
				p.Send(monitor.LogMsg(line))
			})
			if err != nil {
				d.Logger.Warn("stderr capture unavailable", "err", err)
			}
			defer capture.Stop()

			if _, err := p.Run(); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
