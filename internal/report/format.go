// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/citation-audit/internal/attribution"
	"github.com/pdiddy/citation-audit/internal/citations"
	"github.com/pdiddy/citation-audit/pkg/types"
)

// WriteSeriesTable writes a yearly citation series as a human-readable table.
func WriteSeriesTable(series []types.YearCount, stats attribution.Stats, w io.Writer) {
	if len(series) == 0 {
		fmt.Fprintln(w, "No citations found.")
		return
	}

	fmt.Fprintf(w, "%-6s  %s\n", "Year", "Citations")
	fmt.Fprintln(w, strings.Repeat("-", 18))

	total := 0
	for _, yc := range series {
		fmt.Fprintf(w, "%-6d  %d\n", yc.Year, yc.CitedByCount)
		total += yc.CitedByCount
	}

	fmt.Fprintf(w, "\n%d citations across %d accepted work(s)", total, stats.Accepted)
	if n := stats.NameOnly + stats.NoIdentifier; n > 0 {
		fmt.Fprintf(w, " (%d rejected: %d name-only, %d without identifiers)",
			n, stats.NameOnly, stats.NoIdentifier)
	}
	fmt.Fprintln(w)
}

// WriteCompareTable writes reconciled-vs-profile deltas as a table.
func WriteCompareTable(deltas []citations.Delta, w io.Writer) {
	if len(deltas) == 0 {
		fmt.Fprintln(w, "Nothing to compare.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-12s  %-12s  %s\n", "Year", "Reconciled", "Profile", "Excess")
	fmt.Fprintln(w, strings.Repeat("-", 42))

	var recTotal, profTotal int
	for _, d := range deltas {
		fmt.Fprintf(w, "%-6d  %-12d  %-12d  %+d\n", d.Year, d.Reconciled, d.Profile, d.Excess)
		recTotal += d.Reconciled
		profTotal += d.Profile
	}

	fmt.Fprintf(w, "\nTotals: reconciled %d, profile %d, excess %+d\n",
		recTotal, profTotal, profTotal-recTotal)
}

// WriteWorksTable writes a work listing with per-work filter decisions.
func WriteWorksTable(accepted []types.Work, rejected []attribution.RejectedWork, w io.Writer) {
	if len(accepted) == 0 && len(rejected) == 0 {
		fmt.Fprintln(w, "No works found.")
		return
	}

	fmt.Fprintf(w, "%-60s  %-4s  %-9s  %s\n", "Title", "Year", "Citations", "Decision")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, work := range accepted {
		writeWorkRow(w, work, string(attribution.Accepted))
	}
	for _, rej := range rejected {
		writeWorkRow(w, rej.Work, string(rej.Reason))
	}

	fmt.Fprintf(w, "\n%d accepted, %d rejected\n", len(accepted), len(rejected))
}

func writeWorkRow(w io.Writer, work types.Work, decision string) {
	title := work.Title
	if title == "" {
		title = work.ID
	}
	if len(title) > 60 {
		title = title[:57] + "..."
	}
	year := ""
	if work.PublicationYear > 0 {
		year = fmt.Sprintf("%d", work.PublicationYear)
	}
	fmt.Fprintf(w, "%-60s  %-4s  %-9d  %s\n", title, year, work.CitedByCount, decision)
}

// WriteJSON writes v as indented JSON.
func WriteJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
