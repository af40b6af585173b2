// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"sort"
)

// Filter returns the rows of t that satisfy every non-nil predicate.
// Predicates are evaluated in FilterOrder and each row stops at its first
// failing predicate.
func Filter(t *Table, preds []Predicate) View {
	active := orderPredicates(preds)
	if len(active) == 0 {
		return t.All()
	}

	rows := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		item := t.Item(i)
		keep := true
		for _, p := range active {
			if !p.Match(item) {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, i)
		}
	}
	return View{table: t, rows: rows}
}

func orderPredicates(preds []Predicate) []Predicate {
	active := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Column().order() < active[j].Column().order()
	})
	return active
}
