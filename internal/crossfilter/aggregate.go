// Marquee - Plex Library Cross-Filter Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package crossfilter

import (
	"math"
	"sort"
	"strconv"

	"github.com/tomtom215/marquee/internal/models"
)

// Counts returns the frequency of each distinct value of column in v.
// Set-valued columns are exploded so each member counts once per item.
// Items with an unknown year or no rating are not counted.
func Counts(v View, column Column) map[string]int {
	counts := make(map[string]int)
	v.Each(func(item *models.Item) {
		switch {
		case column == ColumnYear:
			if item.Year != 0 {
				counts[strconv.Itoa(item.Year)]++
			}
		case column == ColumnRating:
			if item.Rated {
				counts[strconv.FormatFloat(float64(tenths(item.Rating))/10, 'f', 1, 64)]++
			}
		case column.SetValued():
			for _, l := range labels(item, column) {
				counts[l]++
			}
		}
	})
	return counts
}

// SortCounts orders counts by count descending, then label ascending.
func SortCounts(counts map[string]int) []models.CountEntry {
	out := make([]models.CountEntry, 0, len(counts))
	for label, n := range counts {
		out = append(out, models.CountEntry{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// TopK returns the k most frequent entries. k <= 0 returns every entry.
func TopK(counts map[string]int, k int) []models.CountEntry {
	sorted := SortCounts(counts)
	if k > 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// YearCounts returns the number of items per year in ascending year order.
// Each year carries up to hover of its best rated titles.
func YearCounts(v View, hover int) []models.YearCount {
	byYear := make(map[int][]*models.Item)
	v.Each(func(item *models.Item) {
		if item.Year != 0 {
			byYear[item.Year] = append(byYear[item.Year], item)
		}
	})

	out := make([]models.YearCount, 0, len(byYear))
	for year, items := range byYear {
		yc := models.YearCount{Year: year, Count: len(items)}
		if hover > 0 {
			sortByRating(items)
			for _, item := range items {
				if len(yc.TopTitles) == hover {
					break
				}
				yc.TopTitles = append(yc.TopTitles, item.Title)
			}
		}
		out = append(out, yc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// RatingHistogram bins the rated items of v into fixed-width bins covering
// [start, end). The last bin is closed so a rating equal to end is counted.
func RatingHistogram(v View, start, end, size float64) []models.HistogramBin {
	if size <= 0 || end <= start {
		return nil
	}
	n := int(math.Ceil((end-start)/size - 1e-9))
	bins := make([]models.HistogramBin, n)
	for i := range bins {
		bins[i].Start = roundTo(start+float64(i)*size, 2)
		bins[i].End = roundTo(start+float64(i+1)*size, 2)
	}
	v.Each(func(item *models.Item) {
		if !item.Rated || item.Rating < start || item.Rating > end {
			return
		}
		i := int(math.Floor((item.Rating-start)/size + 1e-9))
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	})
	return bins
}

// Summarize reports count, min, max and mean of the rated items in v.
func Summarize(v View) models.RatingSummary {
	var s models.RatingSummary
	var sum float64
	v.Each(func(item *models.Item) {
		if !item.Rated {
			return
		}
		if s.Count == 0 || item.Rating < s.Min {
			s.Min = item.Rating
		}
		if s.Count == 0 || item.Rating > s.Max {
			s.Max = item.Rating
		}
		sum += item.Rating
		s.Count++
	})
	if s.Count == 0 {
		return models.RatingSummary{Empty: true}
	}
	s.Mean = roundTo(sum/float64(s.Count), 2)
	return s
}

// TopRated returns up to n rated items ordered by rating descending, then
// title ascending.
func TopRated(v View, n int) []models.RatedTitle {
	items := make([]*models.Item, 0, v.Len())
	v.Each(func(item *models.Item) {
		if item.Rated {
			items = append(items, item)
		}
	})
	sortByRating(items)
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	out := make([]models.RatedTitle, len(items))
	for i, item := range items {
		out[i] = models.RatedTitle{Title: item.Title, Year: item.Year, Rating: item.Rating}
	}
	return out
}

// ActorRace returns one frame per year with the running appearance total of
// the k most frequent actors in v, plus the largest total reached.
func ActorRace(v View, k int) ([]models.RaceFrame, int) {
	top := TopK(Counts(v, ColumnActors), k)
	if len(top) == 0 {
		return nil, 0
	}
	tracked := make(map[string]struct{}, len(top))
	for _, e := range top {
		tracked[e.Label] = struct{}{}
	}

	perYear := make(map[int]map[string]int)
	v.Each(func(item *models.Item) {
		if item.Year == 0 {
			return
		}
		for _, a := range item.Actors {
			if _, ok := tracked[a]; !ok {
				continue
			}
			if perYear[item.Year] == nil {
				perYear[item.Year] = make(map[string]int)
			}
			perYear[item.Year][a]++
		}
	})

	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}
	sort.Ints(years)

	running := make(map[string]int, len(top))
	frames := make([]models.RaceFrame, 0, len(years))
	maximum := 0
	for _, y := range years {
		for a, n := range perYear[y] {
			running[a] += n
		}
		entries := make([]models.CountEntry, len(top))
		for i, e := range top {
			entries[i] = models.CountEntry{Label: e.Label, Count: running[e.Label]}
			if running[e.Label] > maximum {
				maximum = running[e.Label]
			}
		}
		frames = append(frames, models.RaceFrame{Year: y, Entries: entries})
	}
	return frames, maximum
}

func sortByRating(items []*models.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rating != items[j].Rating {
			return items[i].Rating > items[j].Rating
		}
		return items[i].Title < items[j].Title
	})
}

func roundTo(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}
