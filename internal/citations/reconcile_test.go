// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations_test

import (
	"reflect"
	"testing"

	"github.com/pdiddy/citation-audit/internal/attribution"
	"github.com/pdiddy/citation-audit/internal/citations"
	"github.com/pdiddy/citation-audit/pkg/types"
)

// The reason this tool exists: a work by a same-named but differently
// identified author must not leak into the aggregate.
func TestFilteredAggregateExcludesImpostor(t *testing.T) {
	target := "https://openalex.org/A5023888391"
	works := []types.Work{
		{
			ID: "https://openalex.org/W1",
			Authorships: []types.Authorship{
				{Author: types.AuthorRef{ID: target, DisplayName: "Jane Doe"}},
			},
			CountsByYear: []types.YearCount{
				{Year: 2020, CitedByCount: 5},
				{Year: 2021, CitedByCount: 3},
			},
		},
		{
			ID: "https://openalex.org/W2",
			Authorships: []types.Authorship{
				{Author: types.AuthorRef{ID: "https://openalex.org/A9999999999", DisplayName: "Jane Doe"}},
			},
			CountsByYear: []types.YearCount{
				{Year: 2020, CitedByCount: 100},
				{Year: 2021, CitedByCount: 100},
			},
		},
	}

	q, err := attribution.ParseQuery(target)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	res := attribution.Filter(works, q, attribution.Policy{})
	got := citations.Aggregate(res.Accepted)

	want := types.CitationSeries{2020: 5, 2021: 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("aggregate = %v, want %v (impostor work must not contribute)", got, want)
	}
	if res.Stats.NameOnly != 1 {
		t.Errorf("Stats = %+v, want one name-only rejection", res.Stats)
	}
}
