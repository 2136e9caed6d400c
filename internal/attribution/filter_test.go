// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package attribution

import (
	"testing"

	"github.com/pdiddy/citation-audit/pkg/types"
)

const (
	targetID    = "https://openalex.org/A5023888391"
	otherID     = "https://openalex.org/A9999999999"
	targetORCID = "https://orcid.org/0000-0002-1825-0097"
)

func workBy(authors ...types.AuthorRef) types.Work {
	w := types.Work{ID: "https://openalex.org/W1", Title: "Some Work"}
	for _, a := range authors {
		w.Authorships = append(w.Authorships, types.Authorship{Author: a})
	}
	return w
}

func mustParse(t *testing.T, raw string) Query {
	t.Helper()
	q, err := ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", raw, err)
	}
	return q
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantAuthorID string
		wantORCID    string
		wantErr      bool
	}{
		{"bare author ID", "A5023888391", "A5023888391", "", false},
		{"author ID URL", targetID, "A5023888391", "", false},
		{"lowercase author ID", "a5023888391", "A5023888391", "", false},
		{"bare ORCID", "0000-0002-1825-0097", "", "0000-0002-1825-0097", false},
		{"ORCID URL", targetORCID, "", "0000-0002-1825-0097", false},
		{"name is not an identifier", "Jane Doe", "", "", true},
		{"empty", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuery(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuery: %v", err)
			}
			if q.AuthorID != tt.wantAuthorID || q.ORCID != tt.wantORCID {
				t.Errorf("Query = %+v, want AuthorID %q ORCID %q", q, tt.wantAuthorID, tt.wantORCID)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		work  types.Work
		query string
		want  Reason
	}{
		{
			name:  "author ID match accepts",
			work:  workBy(types.AuthorRef{ID: targetID, DisplayName: "Jane Doe"}),
			query: "A5023888391",
			want:  Accepted,
		},
		{
			name:  "ORCID match accepts",
			work:  workBy(types.AuthorRef{ORCID: targetORCID, DisplayName: "Jane Doe"}),
			query: "0000-0002-1825-0097",
			want:  Accepted,
		},
		{
			name: "match anywhere in the author list accepts",
			work: workBy(
				types.AuthorRef{ID: otherID, DisplayName: "Someone Else"},
				types.AuthorRef{ID: targetID, DisplayName: "Jane Doe"},
			),
			query: "A5023888391",
			want:  Accepted,
		},
		{
			name:  "same name different ID rejects",
			work:  workBy(types.AuthorRef{ID: otherID, DisplayName: "Jane Doe"}),
			query: "A5023888391",
			want:  RejectedNameOnly,
		},
		{
			name:  "ORCID query does not accept on bare ID presence",
			work:  workBy(types.AuthorRef{ID: otherID, DisplayName: "Jane Doe"}),
			query: "0000-0002-1825-0097",
			want:  RejectedNameOnly,
		},
		{
			name:  "no identifiers at all",
			work:  workBy(types.AuthorRef{DisplayName: "Jane Doe"}),
			query: "A5023888391",
			want:  RejectedNoIdentifier,
		},
		{
			name:  "empty author list",
			work:  types.Work{ID: "https://openalex.org/W1"},
			query: "A5023888391",
			want:  RejectedNoIdentifier,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.work, mustParse(t, tt.query))
			if got != tt.want {
				t.Errorf("Evaluate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterPartitionsAndTallies(t *testing.T) {
	works := []types.Work{
		workBy(types.AuthorRef{ID: targetID, DisplayName: "Jane Doe"}),
		workBy(types.AuthorRef{ID: otherID, DisplayName: "Jane Doe"}),
		workBy(types.AuthorRef{DisplayName: "Jane Doe"}),
		workBy(types.AuthorRef{ORCID: targetORCID, DisplayName: "J. Doe"}),
	}

	res := Filter(works, mustParse(t, targetID), Policy{})
	// The ORCID-only authorship counts as name-only against an ID query:
	// it carries an identifier, just not a matching one.
	if res.Stats.Accepted != 1 || res.Stats.NameOnly != 2 || res.Stats.NoIdentifier != 1 {
		t.Errorf("Stats = %+v, want accepted 1, name-only 2, no-identifier 1", res.Stats)
	}
	if len(res.Accepted) != 1 || res.Accepted[0].Authorships[0].Author.ID != targetID {
		t.Errorf("Accepted = %+v, want only the ID-matched work", res.Accepted)
	}
	if res.Stats.Total() != 4 {
		t.Errorf("Total = %d, want 4", res.Stats.Total())
	}
}

func TestFilterByORCIDAcceptsORCIDWork(t *testing.T) {
	works := []types.Work{
		workBy(types.AuthorRef{ORCID: targetORCID, DisplayName: "Jane Doe"}),
		workBy(types.AuthorRef{ID: otherID, DisplayName: "Jane Doe"}),
		workBy(types.AuthorRef{DisplayName: "Jane Doe"}),
	}

	res := Filter(works, mustParse(t, "0000-0002-1825-0097"), Policy{})
	if res.Stats.Accepted != 1 || res.Stats.NameOnly != 1 || res.Stats.NoIdentifier != 1 {
		t.Errorf("Stats = %+v, want accepted 1, name-only 1, no-identifier 1", res.Stats)
	}
	if len(res.Accepted) != 1 || res.Accepted[0].Authorships[0].Author.ORCID != targetORCID {
		t.Errorf("Accepted = %+v, want the ORCID work", res.Accepted)
	}
	if res.Stats.Total() != 3 {
		t.Errorf("Total = %d, want 3", res.Stats.Total())
	}
}

func TestFilterIncludeUnidentifiedPolicy(t *testing.T) {
	works := []types.Work{
		workBy(types.AuthorRef{DisplayName: "Jane Doe"}),
		workBy(types.AuthorRef{ID: otherID, DisplayName: "Jane Doe"}),
	}
	q := mustParse(t, targetID)

	strict := Filter(works, q, Policy{})
	if strict.Stats.Accepted != 0 || strict.Stats.NoIdentifier != 1 {
		t.Errorf("strict Stats = %+v, want no accepts", strict.Stats)
	}

	lax := Filter(works, q, Policy{IncludeUnidentified: true})
	if lax.Stats.Accepted != 1 {
		t.Errorf("lax Stats = %+v, want the unidentified work accepted", lax.Stats)
	}
	// Name-only rejections are never admitted by the policy.
	if lax.Stats.NameOnly != 1 {
		t.Errorf("lax Stats = %+v, name-only rejection must survive the policy", lax.Stats)
	}
}

func TestFilterRejectedCarriesReasons(t *testing.T) {
	works := []types.Work{
		workBy(types.AuthorRef{ID: otherID, DisplayName: "Jane Doe"}),
		workBy(types.AuthorRef{DisplayName: "Jane Doe"}),
	}
	res := Filter(works, mustParse(t, targetID), Policy{})
	if len(res.Rejected) != 2 {
		t.Fatalf("len(Rejected) = %d, want 2", len(res.Rejected))
	}
	if res.Rejected[0].Reason != RejectedNameOnly {
		t.Errorf("Rejected[0].Reason = %q, want %q", res.Rejected[0].Reason, RejectedNameOnly)
	}
	if res.Rejected[1].Reason != RejectedNoIdentifier {
		t.Errorf("Rejected[1].Reason = %q, want %q", res.Rejected[1].Reason, RejectedNoIdentifier)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	res := Filter(nil, mustParse(t, targetID), Policy{})
	if len(res.Accepted) != 0 || len(res.Rejected) != 0 || res.Stats.Total() != 0 {
		t.Errorf("Result = %+v, want empty", res)
	}
}
