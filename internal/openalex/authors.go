// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"fmt"

	"github.com/pdiddy/citation-audit/pkg/types"
)

// Author fetches the Author entity for an OpenAlex author ID or ORCID.
// The entity carries OpenAlex's own counts_by_year aggregate, which the
// citations --compare path holds up against the reconciled series.
func (c *Client) Author(ctx context.Context, query string) (types.Author, error) {
	var path string
	switch {
	case IsORCID(query):
		path = "/authors/orcid:" + NormalizeORCID(query)
	case IsAuthorID(query):
		path = "/authors/" + NormalizeAuthorID(query)
	default:
		return types.Author{}, fmt.Errorf("unrecognized author query %q: want an OpenAlex author ID (A...) or an ORCID", query)
	}

	var a types.Author
	if err := c.getJSON(ctx, path, nil, &a); err != nil {
		return types.Author{}, err
	}
	return a, nil
}

// InstitutionByROR looks up an institution by its ROR ID and returns the
// first match.
func (c *Client) InstitutionByROR(ctx context.Context, rorID string) (types.Institution, error) {
	if rorID == "" {
		return types.Institution{}, fmt.Errorf("no ROR ID given")
	}

	var ir struct {
		Meta    meta                `json:"meta"`
		Results []types.Institution `json:"results"`
	}
	if err := c.getJSON(ctx, "/institutions", urlValues("filter", "ror:"+rorID), &ir); err != nil {
		return types.Institution{}, err
	}
	if len(ir.Results) == 0 {
		return types.Institution{}, fmt.Errorf("no institution found for ROR %s", rorID)
	}
	return ir.Results[0], nil
}
