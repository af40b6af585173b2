// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/source"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("source", cfg.Library.Source).
		Msg("Starting Marquee")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, library, err := loadEngine(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load library")
	}

	handler := api.NewHandler(engine, cfg, library)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.Timeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if c := handler.Cache(); c != nil {
		tree.AddMaintenanceService(c)
	}
	tree.AddMaintenanceService(services.NewUptimeService(library.LoadedAt, 15*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))

	logging.Info().Str("addr", server.Addr).Msg("Supervisor tree starting")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Marquee stopped")
}

// loadEngine loads the configured library and builds the crossfilter engine.
func loadEngine(ctx context.Context, cfg *config.Config) (*crossfilter.Engine, api.LibraryInfo, error) {
	loader, err := source.New(cfg)
	if err != nil {
		return nil, api.LibraryInfo{}, err
	}

	items, err := source.LoadLibrary(ctx, loader)
	if err != nil {
		return nil, api.LibraryInfo{}, err
	}

	engine := crossfilter.NewEngine(crossfilter.NewTable(items), engineOptions(&cfg.Dashboard))
	return engine, api.LibraryInfo{
		Source:   loader.Name(),
		LoadedAt: time.Now(),
		Version:  version,
	}, nil
}

// engineOptions maps dashboard configuration onto engine options.
// Histogram bounds keep the engine defaults.
func engineOptions(d *config.DashboardConfig) crossfilter.Options {
	opts := crossfilter.DefaultOptions()
	opts.TopK = d.TopK
	opts.TableRows = d.TableRows
	opts.HoverTitles = d.HoverTitles
	opts.HistogramBinSize = d.HistogramBinSize
	opts.Tolerance = crossfilter.Tolerance{Below: d.RatingPadBelow, Above: d.RatingPadAbove}
	return opts
}
