// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package attribution decides whether a work is plausibly authored by the
// queried individual. OpenAlex author records are known to absorb works by
// distinct people sharing a name, so acceptance requires an exact
// identifier match: a work is accepted only when one of its authorships
// carries the queried OpenAlex author ID or ORCID. Name similarity never
// accepts a work.
package attribution

import (
	"fmt"

	"github.com/pdiddy/citation-audit/internal/openalex"
	"github.com/pdiddy/citation-audit/pkg/types"
)

// Reason classifies a filter decision.
type Reason string

const (
	// Accepted: an authorship identifier exactly matches the query.
	Accepted Reason = "accepted"

	// RejectedNameOnly: every authorship carries some identifier but none
	// matches the query. The attribution is to a different identified
	// person, the false positive this filter exists to remove.
	RejectedNameOnly Reason = "rejected_name_only"

	// RejectedNoIdentifier: no authorship carries any identifier at all, a
	// legacy or incomplete record that cannot be judged either way.
	RejectedNoIdentifier Reason = "rejected_no_identifier"
)

// Query is a normalized author identifier to match against.
type Query struct {
	// Raw is the identifier as the user supplied it.
	Raw string

	// AuthorID is the bare OpenAlex author ID (e.g. "A5023888391"), or empty.
	AuthorID string

	// ORCID is the bare ORCID (e.g. "0000-0002-1825-0097"), or empty.
	ORCID string
}

// ParseQuery normalizes a raw author identifier. It accepts OpenAlex
// author IDs and ORCIDs, in bare or URL form.
func ParseQuery(raw string) (Query, error) {
	switch {
	case openalex.IsORCID(raw):
		return Query{Raw: raw, ORCID: openalex.NormalizeORCID(raw)}, nil
	case openalex.IsAuthorID(raw):
		return Query{Raw: raw, AuthorID: openalex.NormalizeAuthorID(raw)}, nil
	default:
		return Query{}, fmt.Errorf("unrecognized author identifier %q: want an OpenAlex author ID (A...) or an ORCID", raw)
	}
}

// Policy controls the filter's handling of works it cannot judge.
type Policy struct {
	// IncludeUnidentified accepts works whose author lists carry no
	// identifiers at all. Off by default: silently accepting such works
	// reproduces the misattribution bug this filter exists to fix. Turn it
	// on only for an author record that has been vetted by hand.
	IncludeUnidentified bool
}

// Evaluate classifies a single work against the query.
func Evaluate(work types.Work, q Query) Reason {
	sawIdentifier := false
	for _, as := range work.Authorships {
		if as.Author.ID != "" {
			sawIdentifier = true
			if q.AuthorID != "" && openalex.NormalizeAuthorID(as.Author.ID) == q.AuthorID {
				return Accepted
			}
		}
		if as.Author.ORCID != "" {
			sawIdentifier = true
			if q.ORCID != "" && openalex.NormalizeORCID(as.Author.ORCID) == q.ORCID {
				return Accepted
			}
		}
	}
	if sawIdentifier {
		return RejectedNameOnly
	}
	return RejectedNoIdentifier
}

// RejectedWork pairs a rejected work with the reason, for audit output.
type RejectedWork struct {
	Work   types.Work `json:"work" yaml:"work"`
	Reason Reason     `json:"reason" yaml:"reason"`
}

// Stats tallies filter decisions so the user can audit what was dropped.
type Stats struct {
	Accepted     int `json:"accepted" yaml:"accepted"`
	NameOnly     int `json:"rejected_name_only" yaml:"rejected_name_only"`
	NoIdentifier int `json:"rejected_no_identifier" yaml:"rejected_no_identifier"`
}

// Total returns the number of works examined.
func (s Stats) Total() int {
	return s.Accepted + s.NameOnly + s.NoIdentifier
}

// Result is the outcome of filtering a work list.
type Result struct {
	Accepted []types.Work
	Rejected []RejectedWork
	Stats    Stats
}

// Filter partitions works into accepted and rejected per the query and
// policy. Input order is preserved within each partition.
func Filter(works []types.Work, q Query, policy Policy) Result {
	var res Result
	for _, w := range works {
		reason := Evaluate(w, q)
		if reason == RejectedNoIdentifier && policy.IncludeUnidentified {
			reason = Accepted
		}
		switch reason {
		case Accepted:
			res.Accepted = append(res.Accepted, w)
			res.Stats.Accepted++
		case RejectedNameOnly:
			res.Rejected = append(res.Rejected, RejectedWork{Work: w, Reason: reason})
			res.Stats.NameOnly++
		case RejectedNoIdentifier:
			res.Rejected = append(res.Rejected, RejectedWork{Work: w, Reason: reason})
			res.Stats.NoIdentifier++
		}
	}
	return res
}
