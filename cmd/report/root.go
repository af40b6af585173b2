// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/source"
)

// commandContext lazily loads the library shared by all subcommands.
type commandContext struct {
	csvPath  *string
	topK     *int
	engine   *crossfilter.Engine
	loadedAt time.Time
}

func newRootCommand() *cobra.Command {
	var csvFlag string
	var topFlag int

	ctx := &commandContext{csvPath: &csvFlag, topK: &topFlag}

	rootCmd := &cobra.Command{
		Use:           "report",
		Short:         "Print Marquee dashboard aggregates for a CSV library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Keep stdout clean for tables; loader warnings go to stderr.
			logging.Init(logging.Config{Level: "warn", Format: "console"})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&csvFlag, "csv", "", "Library CSV file (defaults to library.csv_path from configuration)")
	rootCmd.PersistentFlags().IntVar(&topFlag, "top", 0, "Rows for ranked charts (defaults to dashboard.top_k)")

	rootCmd.AddCommand(newSummaryCommand(ctx))
	rootCmd.AddCommand(newCountsCommand(ctx))
	rootCmd.AddCommand(newTopRatedCommand(ctx))

	return rootCmd
}

// ensureEngine loads the library on first use.
func (c *commandContext) ensureEngine(cmd *cobra.Command) (*crossfilter.Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}

	opts := crossfilter.DefaultOptions()
	path := *c.csvPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		path = cfg.Library.CSVPath
		opts.TopK = cfg.Dashboard.TopK
		opts.TableRows = cfg.Dashboard.TableRows
		opts.HoverTitles = cfg.Dashboard.HoverTitles
		opts.HistogramBinSize = cfg.Dashboard.HistogramBinSize
		opts.Tolerance = crossfilter.Tolerance{Below: cfg.Dashboard.RatingPadBelow, Above: cfg.Dashboard.RatingPadAbove}
	}
	if *c.topK > 0 {
		opts.TopK = *c.topK
		opts.TableRows = *c.topK
	}

	items, err := source.LoadLibrary(cmd.Context(), source.NewCSVLoader(path))
	if err != nil {
		return nil, err
	}

	c.engine = crossfilter.NewEngine(crossfilter.NewTable(items), opts)
	c.loadedAt = time.Now()
	return c.engine, nil
}
