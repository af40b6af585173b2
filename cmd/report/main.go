// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Command report prints dashboard aggregates for a CSV library as terminal
// tables.
//
//	report summary --csv data/library.csv
//	report counts --chart genre_bar_chart --year 1999 --actor "Keanu Reeves"
//	report top-rated --genre Drama --rating-min 7.5
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
