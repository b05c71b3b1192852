package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/younwookim/gamebox/internal/application/game"
	"github.com/younwookim/gamebox/internal/application/registry"
	"github.com/younwookim/gamebox/internal/demo"
	"github.com/younwookim/gamebox/internal/errutil"
	"github.com/younwookim/gamebox/internal/infrastructure/config"
	"github.com/younwookim/gamebox/internal/infrastructure/logging"
	"github.com/younwookim/gamebox/internal/infrastructure/metrics"
)

// newLogger builds the process logger from cfg.Log
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.Setup("gamebox", version, cfg.Log.Format, level, nil), nil
}

// newDemo builds a Game with the demo states registered and the menu current
func newDemo(cfg *config.Config, logger *slog.Logger, opts ...game.Option) (*game.Game, error) {
	reg := registry.New(registry.WithLogger(logger))
	g := game.New(reg, cfg.Window, append([]game.Option{game.WithLogger(logger)}, opts...)...)

	app, err := demo.Register(reg, g, logger)
	if err != nil {
		return nil, err
	}
	if err := g.Switch(app.Menu); err != nil {
		return nil, err
	}
	return g, nil
}

// play runs the demo with an optional metrics server alongside it
func play(cfg *config.Config, logger *slog.Logger, opts ...game.Option) error {
	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr, logger)
		if _, err := srv.Start(); err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(ctx); err != nil {
				errutil.LogError(logger, "metrics server shutdown failed", err)
			}
		}()
		opts = append(opts, game.WithObserver(srv.Metrics()))
	}

	g, err := newDemo(cfg, logger, opts...)
	if err != nil {
		return err
	}
	return g.Run()
}
