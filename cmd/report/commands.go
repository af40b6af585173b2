// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/crossfilter"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/source"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Describe the whole library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}
			s := engine.Summary(source.SourceCSV, ctx.loadedAt)

			years := "n/a"
			if s.FirstYear > 0 {
				years = fmt.Sprintf("%d - %d", s.FirstYear, s.LastYear)
			}
			rows := [][]string{
				{"Items", humanize.Comma(int64(s.Items))},
				{"Years", years},
				{"Genres", humanize.Comma(int64(s.Distinct.Genres))},
				{"Countries", humanize.Comma(int64(s.Distinct.Countries))},
				{"Actors", humanize.Comma(int64(s.Distinct.Actors))},
				{"Directors", humanize.Comma(int64(s.Distinct.Directors))},
				{"Studios", humanize.Comma(int64(s.Distinct.Studios))},
				{"Rated", humanize.Comma(int64(s.Rating.Count))},
				{"Rating", formatRating(s.Rating)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("Library", []string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newCountsCommand(ctx *commandContext) *cobra.Command {
	var chartName string
	var filters selectionFlags

	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Print one chart's aggregates under the given selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := crossfilter.ParseChart(chartName)
			if err != nil {
				return err
			}
			if chart == crossfilter.ChartRatingTable {
				return fmt.Errorf("use the top-rated command for %s", chartName)
			}
			sel, err := filters.selections(cmd)
			if err != nil {
				return err
			}
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}
			data, err := engine.Render(chart, sel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderChart(data))
			fmt.Fprintln(out, footer(data, engine.Table().Len()))
			return nil
		},
	}

	cmd.Flags().StringVar(&chartName, "chart", string(crossfilter.ChartGenre), "Chart to print ("+chartNames()+")")
	filters.register(cmd)
	return cmd
}

func newTopRatedCommand(ctx *commandContext) *cobra.Command {
	var filters selectionFlags

	cmd := &cobra.Command{
		Use:   "top-rated",
		Short: "Print the highest rated titles under the given selections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := filters.selections(cmd)
			if err != nil {
				return err
			}
			engine, err := ctx.ensureEngine(cmd)
			if err != nil {
				return err
			}
			data, err := engine.Render(crossfilter.ChartRatingTable, sel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderChart(data))
			fmt.Fprintln(out, footer(data, engine.Table().Len()))
			return nil
		},
	}

	filters.register(cmd)
	return cmd
}

// renderChart prints whichever payload the chart carries.
func renderChart(data models.ChartData) string {
	switch {
	case len(data.Years) > 0:
		rows := make([][]string, len(data.Years))
		for i, y := range data.Years {
			rows[i] = []string{strconv.Itoa(y.Year), humanize.Comma(int64(y.Count)), strings.Join(y.TopTitles, ", ")}
		}
		return renderTable(data.Title, []string{"Year", "Movies", "Top titles"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft})

	case len(data.Histogram) > 0:
		rows := make([][]string, len(data.Histogram))
		for i, b := range data.Histogram {
			rows[i] = []string{fmt.Sprintf("%.1f - %.1f", b.Start, b.End), humanize.Comma(int64(b.Count))}
		}
		out := renderTable(data.Title, []string{"Rating", "Movies"}, rows, []columnAlignment{alignLeft, alignRight})
		if data.Rating != nil {
			out += "\n" + formatRating(*data.Rating)
		}
		return out

	case len(data.TopRated) > 0:
		rows := make([][]string, len(data.TopRated))
		for i, r := range data.TopRated {
			rows[i] = []string{strconv.Itoa(i + 1), r.Title, strconv.Itoa(r.Year), strconv.FormatFloat(r.Rating, 'f', 1, 64)}
		}
		return renderTable(data.Title, []string{"#", "Title", "Year", "Rating"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignRight})

	case len(data.RaceFrames) > 0:
		rows := make([][]string, 0, len(data.RaceFrames))
		for _, f := range data.RaceFrames {
			leaders := make([]string, 0, 3)
			for _, e := range f.Entries {
				if len(leaders) == cap(leaders) {
					break
				}
				leaders = append(leaders, fmt.Sprintf("%s (%d)", e.Label, e.Count))
			}
			rows = append(rows, []string{strconv.Itoa(f.Year), strings.Join(leaders, ", ")})
		}
		return renderTable(data.Title, []string{"Year", "Leaders"}, rows, []columnAlignment{alignLeft, alignLeft})

	default:
		rows := make([][]string, len(data.Counts))
		for i, c := range data.Counts {
			rows[i] = []string{c.Label, humanize.Comma(int64(c.Count))}
		}
		return renderTable(data.Title, []string{"Label", "Movies"}, rows, []columnAlignment{alignLeft, alignRight})
	}
}

func footer(data models.ChartData, total int) string {
	line := fmt.Sprintf("%s of %s movies", humanize.Comma(int64(data.Rows)), humanize.Comma(int64(total)))
	if len(data.FilteredBy) > 0 {
		line += " (filtered by " + strings.Join(data.FilteredBy, ", ") + ")"
	}
	return line
}

func formatRating(r models.RatingSummary) string {
	if r.Empty || r.Count == 0 {
		return "no rated movies"
	}
	return fmt.Sprintf("min %.1f, mean %.2f, max %.1f", r.Min, r.Mean, r.Max)
}

func chartNames() string {
	names := make([]string, 0, len(crossfilter.Charts))
	for _, c := range crossfilter.Charts {
		if c != crossfilter.ChartRatingTable {
			names = append(names, string(c))
		}
	}
	return strings.Join(names, ", ")
}
