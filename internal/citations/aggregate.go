// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations turns per-work citation counts into an author-level
// yearly series. Summation is commutative, so the result is independent of
// work order and of the order OpenAlex returns counts_by_year entries in.
package citations

import (
	"sort"

	"github.com/pdiddy/citation-audit/pkg/types"
)

// Aggregate sums the per-year citation counts of works into a single
// series. Malformed entries (non-positive year or negative count) are
// skipped without failing the pass; the work's other years still
// contribute. Years present in no work are absent from the result.
func Aggregate(works []types.Work) types.CitationSeries {
	series := types.CitationSeries{}
	for _, w := range works {
		for _, yc := range w.CountsByYear {
			if yc.Year <= 0 || yc.CitedByCount < 0 {
				continue
			}
			series[yc.Year] += yc.CitedByCount
		}
	}
	return series
}

// Years returns the series' years in ascending order.
func Years(series types.CitationSeries) []int {
	years := make([]int, 0, len(series))
	for y := range series {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Total returns the sum of all counts in the series.
func Total(series types.CitationSeries) int {
	total := 0
	for _, n := range series {
		total += n
	}
	return total
}

// Dense renders the series over the inclusive [from, to] range in year
// order, filling missing years with zero. An inverted range yields nil.
func Dense(series types.CitationSeries, from, to int) []types.YearCount {
	if from > to {
		return nil
	}
	out := make([]types.YearCount, 0, to-from+1)
	for y := from; y <= to; y++ {
		out = append(out, types.YearCount{Year: y, CitedByCount: series[y]})
	}
	return out
}

// FromCounts converts a raw counts_by_year list (e.g. from an Author
// entity) into a series, with the same malformed-entry handling as
// Aggregate.
func FromCounts(counts []types.YearCount) types.CitationSeries {
	series := types.CitationSeries{}
	for _, yc := range counts {
		if yc.Year <= 0 || yc.CitedByCount < 0 {
			continue
		}
		series[yc.Year] += yc.CitedByCount
	}
	return series
}

// Delta is the per-year difference between the author profile's aggregate
// and the reconciled work-level aggregate. A positive Excess is citation
// count the profile claims but the filtered works do not support.
type Delta struct {
	Year       int `json:"year" yaml:"year"`
	Reconciled int `json:"reconciled" yaml:"reconciled"`
	Profile    int `json:"profile" yaml:"profile"`
	Excess     int `json:"excess" yaml:"excess"`
}

// Compare lines up the reconciled series against the author profile's own
// series over the union of their years, ascending.
func Compare(reconciled, profile types.CitationSeries) []Delta {
	yearSet := map[int]bool{}
	for y := range reconciled {
		yearSet[y] = true
	}
	for y := range profile {
		yearSet[y] = true
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	deltas := make([]Delta, 0, len(years))
	for _, y := range years {
		deltas = append(deltas, Delta{
			Year:       y,
			Reconciled: reconciled[y],
			Profile:    profile[y],
			Excess:     profile[y] - reconciled[y],
		})
	}
	return deltas
}
