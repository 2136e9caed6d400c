// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists and prints the outcome of a reconciliation run.
// A saved report lets the researcher audit which works were rejected and
// why without re-querying the API.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citation-audit/internal/attribution"
	"github.com/pdiddy/citation-audit/internal/citations"
	"github.com/pdiddy/citation-audit/pkg/types"
)

// AuditReport is the on-disk representation of one reconciliation run.
type AuditReport struct {
	Query    QueryInfo         `yaml:"query"`
	Series   []types.YearCount `yaml:"series"`
	Summary  Summary           `yaml:"summary"`
	Rejected []RejectedEntry   `yaml:"rejected,omitempty"`
}

// QueryInfo echoes the parameters that produced the report.
type QueryInfo struct {
	Author              string `yaml:"author"`
	IncludeUnidentified bool   `yaml:"include_unidentified,omitempty"`
	From                int    `yaml:"from,omitempty"`
	To                  int    `yaml:"to,omitempty"`
}

// Summary holds run statistics and a timestamp.
type Summary struct {
	WorksExamined        int       `yaml:"works_examined"`
	WorksAccepted        int       `yaml:"works_accepted"`
	RejectedNameOnly     int       `yaml:"rejected_name_only"`
	RejectedNoIdentifier int       `yaml:"rejected_no_identifier"`
	TotalCitations       int       `yaml:"total_citations"`
	Timestamp            time.Time `yaml:"timestamp"`
}

// RejectedEntry is one rejected work, trimmed to what an audit needs.
type RejectedEntry struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Year   int    `yaml:"year,omitempty"`
	Reason string `yaml:"reason"`
}

// Build assembles a report from a filter result and its aggregate series.
func Build(query QueryInfo, res attribution.Result, series types.CitationSeries) AuditReport {
	r := AuditReport{
		Query: query,
		Summary: Summary{
			WorksExamined:        res.Stats.Total(),
			WorksAccepted:        res.Stats.Accepted,
			RejectedNameOnly:     res.Stats.NameOnly,
			RejectedNoIdentifier: res.Stats.NoIdentifier,
			TotalCitations:       citations.Total(series),
			Timestamp:            time.Now(),
		},
	}
	for _, y := range citations.Years(series) {
		r.Series = append(r.Series, types.YearCount{Year: y, CitedByCount: series[y]})
	}
	for _, rej := range res.Rejected {
		r.Rejected = append(r.Rejected, RejectedEntry{
			ID:     rej.Work.ID,
			Title:  rej.Work.Title,
			Year:   rej.Work.PublicationYear,
			Reason: string(rej.Reason),
		})
	}
	return r
}

// Write saves the report to a YAML file.
func Write(path string, r AuditReport) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Read loads a previously saved report from disk.
func Read(path string) (*AuditReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r AuditReport
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}

// ToSeries rebuilds the CitationSeries from a loaded report.
func (r *AuditReport) ToSeries() types.CitationSeries {
	return citations.FromCounts(r.Series)
}
