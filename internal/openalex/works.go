// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/citation-audit/pkg/types"
)

// WorksByAuthor fetches every work OpenAlex attributes to the given author.
// The query may be an OpenAlex author ID or an ORCID, in URL or bare form.
// The returned list is the unfiltered attribution; callers run it through
// the attribution filter before trusting it.
func (c *Client) WorksByAuthor(ctx context.Context, query string) ([]types.Work, error) {
	var filter string
	switch {
	case IsORCID(query):
		filter = "author.orcid:" + NormalizeORCID(query)
	case IsAuthorID(query):
		filter = "author.id:" + ShortID(query)
	default:
		return nil, fmt.Errorf("unrecognized author query %q: want an OpenAlex author ID (A...) or an ORCID", query)
	}
	return c.listWorks(ctx, filter)
}

// WorksByDOIs fetches works for a batch of DOIs in one filtered listing.
func (c *Client) WorksByDOIs(ctx context.Context, dois []string) ([]types.Work, error) {
	if len(dois) == 0 {
		return nil, fmt.Errorf("no DOIs given")
	}
	return c.listWorks(ctx, "doi:"+strings.Join(dois, "|"))
}

// WorksByROR fetches works affiliated with an institution (by ROR ID) in a
// publication year.
func (c *Client) WorksByROR(ctx context.Context, rorID string, year int) ([]types.Work, error) {
	if rorID == "" {
		return nil, fmt.Errorf("no ROR ID given")
	}
	filter := fmt.Sprintf("institutions.ror:%s,publication_year:%d", rorID, year)
	return c.listWorks(ctx, filter)
}

// CorrespondingWorksQuery selects works by corresponding institution,
// year, and optional type / OA-status restrictions.
type CorrespondingWorksQuery struct {
	InstitutionIDs []string
	Year           int
	Types          []string
	OAStatuses     []string
}

// WorksByCorrespondingInstitutions fetches works whose corresponding
// authors belong to the given institutions.
func (c *Client) WorksByCorrespondingInstitutions(ctx context.Context, q CorrespondingWorksQuery) ([]types.Work, error) {
	if len(q.InstitutionIDs) == 0 {
		return nil, fmt.Errorf("no institution IDs given")
	}
	parts := []string{
		"corresponding_institution_ids:" + strings.Join(q.InstitutionIDs, "|"),
		fmt.Sprintf("publication_year:%d", q.Year),
	}
	if len(q.Types) > 0 {
		parts = append(parts, "type:"+strings.Join(q.Types, "|"))
	}
	if len(q.OAStatuses) > 0 {
		parts = append(parts, "oa_status:"+strings.Join(q.OAStatuses, "|"))
	}
	return c.listWorks(ctx, strings.Join(parts, ","))
}

// Cites fetches the works that cite the given work (incoming references).
func (c *Client) Cites(ctx context.Context, workID string) ([]types.Work, error) {
	return c.listWorks(ctx, "cites:"+ShortID(workID))
}

// CitedBy fetches the works the given work cites (outgoing references).
func (c *Client) CitedBy(ctx context.Context, workID string) ([]types.Work, error) {
	return c.listWorks(ctx, "cited_by:"+ShortID(workID))
}

// Work fetches a single work entity by OpenAlex ID or DOI URL.
func (c *Client) Work(ctx context.Context, id string) (types.Work, error) {
	var w types.Work
	if err := c.getJSON(ctx, "/works/"+ShortID(id), nil, &w); err != nil {
		return types.Work{}, err
	}
	return w, nil
}

// ShortID strips the https://openalex.org/ prefix from an entity ID, so
// both URL and bare forms work in filters and path segments.
func ShortID(id string) string {
	return strings.TrimPrefix(id, "https://openalex.org/")
}
