// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for citation-audit.
package types

// Work is a scholarly publication record as returned by the OpenAlex
// Works endpoint. Only the fields the audit needs are decoded.
type Work struct {
	// ID is the full OpenAlex work URL (e.g. "https://openalex.org/W2741809807").
	ID string `json:"id" yaml:"id"`

	// DOI is the full DOI URL as OpenAlex returns it, or empty.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is the work title.
	Title string `json:"title" yaml:"title"`

	// PublicationYear is the year the work was published.
	PublicationYear int `json:"publication_year" yaml:"publication_year"`

	// PublicationDate is the publication date in YYYY-MM-DD form, or empty.
	PublicationDate string `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`

	// Type is the OpenAlex work type (e.g. "article", "book-chapter").
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Authorships lists the author-affiliation records in source order.
	Authorships []Authorship `json:"authorships" yaml:"authorships"`

	// CitedByCount is the lifetime citation total OpenAlex reports for the work.
	CitedByCount int `json:"cited_by_count" yaml:"cited_by_count"`

	// CountsByYear holds the per-year citation counts. OpenAlex returns
	// roughly the last ten years, most recent first.
	CountsByYear []YearCount `json:"counts_by_year" yaml:"counts_by_year"`

	// OpenAccess carries the OA status of the work.
	OpenAccess OpenAccess `json:"open_access" yaml:"open_access"`
}

// Authorship links a Work to one author and their institutions.
type Authorship struct {
	Author          AuthorRef    `json:"author" yaml:"author"`
	Institutions    []AuthorInst `json:"institutions,omitempty" yaml:"institutions,omitempty"`
	IsCorresponding bool         `json:"is_corresponding,omitempty" yaml:"is_corresponding,omitempty"`
}

// AuthorRef identifies an author inside an authorship record.
type AuthorRef struct {
	// ID is the full OpenAlex author URL (e.g. "https://openalex.org/A5023888391"),
	// or empty on legacy records.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// ORCID is the full ORCID URL (e.g. "https://orcid.org/0000-0002-1825-0097"),
	// or empty.
	ORCID string `json:"orcid,omitempty" yaml:"orcid,omitempty"`

	// DisplayName is the author name string as attributed on the work.
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// AuthorInst is an institution attached to an authorship.
type AuthorInst struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	ROR         string `json:"ror,omitempty" yaml:"ror,omitempty"`
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
}

// YearCount is one entry of a counts_by_year series.
type YearCount struct {
	Year         int `json:"year" yaml:"year"`
	CitedByCount int `json:"cited_by_count" yaml:"cited_by_count"`
}

// OpenAccess carries the open-access status fields of a work.
type OpenAccess struct {
	IsOA     bool   `json:"is_oa" yaml:"is_oa"`
	OAStatus string `json:"oa_status,omitempty" yaml:"oa_status,omitempty"`
	OAURL    string `json:"oa_url,omitempty" yaml:"oa_url,omitempty"`
}

// Author is an OpenAlex Author entity. Its CountsByYear is the aggregate
// this tool exists to double-check: it includes citations to every work
// OpenAlex attributes to the ID, misattributions included.
type Author struct {
	ID           string      `json:"id" yaml:"id"`
	ORCID        string      `json:"orcid,omitempty" yaml:"orcid,omitempty"`
	DisplayName  string      `json:"display_name" yaml:"display_name"`
	WorksCount   int         `json:"works_count" yaml:"works_count"`
	CitedByCount int         `json:"cited_by_count" yaml:"cited_by_count"`
	CountsByYear []YearCount `json:"counts_by_year" yaml:"counts_by_year"`
}

// Institution is an OpenAlex Institution entity.
type Institution struct {
	ID          string `json:"id" yaml:"id"`
	ROR         string `json:"ror,omitempty" yaml:"ror,omitempty"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	CountryCode string `json:"country_code,omitempty" yaml:"country_code,omitempty"`
	WorksCount  int    `json:"works_count" yaml:"works_count"`
}
