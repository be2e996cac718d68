package main

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/peek/internal/app"
	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/icons"
	"github.com/llehouerou/peek/internal/logging"
	"github.com/llehouerou/peek/internal/mediactl"
	"github.com/llehouerou/peek/internal/mpris"
	"github.com/llehouerou/peek/internal/notify"
	"github.com/llehouerou/peek/internal/settings"
	"github.com/llehouerou/peek/internal/state"
)

// daemon is a running engine with its OS-facing collaborators.
type daemon struct {
	Engine *app.Engine
	Logger *log.Logger

	logCloser io.Closer
	store     *state.Manager
	media     *mediactl.System
	source    *mpris.Source

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func startDaemon(ctx context.Context, opts *options) (*daemon, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	icons.Init(cfg.IconStyle())

	store, err := opts.openState()
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	d := &daemon{
		Logger:    logger,
		logCloser: logCloser,
		store:     store,
		media:     mediactl.NewSystem(logger),
	}
	d.Engine = app.New(app.Deps{
		Settings: settings.New(cfg, store),
		Media:    d.media,
		Levels:   store,
		Logger:   logger,
	})

	ctx, d.cancel = context.WithCancel(ctx)
	d.Engine.Start(ctx)

	d.startSource(ctx)
	if err := d.startMirror(ctx); err != nil {
		d.Close()
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	logger.Info("peekd started")
	return d, nil
}

func (d *daemon) startSource(ctx context.Context) {
	source, err := mpris.NewSource(d.Logger)
	if err != nil {
		d.Logger.Warn(errmsg.Format(errmsg.OpMprisConnect, err))
		return
	}
	d.source = source
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := source.Run(ctx, d.Engine.OnSample); err != nil && !errors.Is(err, context.Canceled) {
			d.Logger.Warn(errmsg.Format(errmsg.OpMprisRead, err))
		}
	}()
}

func (d *daemon) startMirror(ctx context.Context) error {
	notifier, err := notify.New()
	if err != nil {
		return err
	}
	sub, err := d.Engine.Subscribe(ctx)
	if err != nil {
		return err
	}
	mirror := notify.NewMirror(notifier, d.Logger)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		mirror.Run(ctx, sub)
	}()
	return nil
}

// Close stops the engine, waits for the background goroutines and
// releases every resource.
func (d *daemon) Close() {
	if err := d.Engine.Close(); err != nil {
		d.Logger.Warn("engine close failed", "err", err)
	}
	d.cancel()
	d.wg.Wait()

	if d.source != nil {
		_ = d.source.Close()
	}
	_ = d.media.Close()
	if err := d.store.Close(); err != nil {
		d.Logger.Warn("close state failed", "err", err)
	}
	d.Logger.Info("peekd stopped")
	_ = d.logCloser.Close()
}
