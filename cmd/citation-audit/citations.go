// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-audit/internal/attribution"
	"github.com/pdiddy/citation-audit/internal/citations"
	"github.com/pdiddy/citation-audit/internal/openalex"
	"github.com/pdiddy/citation-audit/internal/report"
	"github.com/pdiddy/citation-audit/internal/store"
	"github.com/pdiddy/citation-audit/pkg/types"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <author-id>",
	Short: "Aggregate an author's per-year citation counts from work records",
	Long: `Citations fetches every work OpenAlex attributes to the author, keeps
only works whose author list carries the queried identifier, and sums the
per-work counts_by_year into one series. The author may be given as an
OpenAlex author ID or an ORCID, in bare or URL form.

With --compare the Author entity's own counts_by_year is fetched too and
the per-year excess is printed; the excess is the citation count OpenAlex
claims that the identifier-matched works do not support.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitations,
}

// citationsOutput is the JSON shape of a reconciliation run.
type citationsOutput struct {
	Author   string                 `json:"author"`
	Series   []types.YearCount      `json:"series"`
	Stats    attribution.Stats      `json:"stats"`
	Total    int                    `json:"total_citations"`
	Compare  []citations.Delta      `json:"compare,omitempty"`
	Rejected []report.RejectedEntry `json:"rejected,omitempty"`
}

func runCitations(cmd *cobra.Command, args []string) error {
	authorArg := args[0]
	query, err := attribution.ParseQuery(authorArg)
	if err != nil {
		return err
	}

	includeUnidentified, _ := cmd.Flags().GetBool("include-unidentified")
	showRejected, _ := cmd.Flags().GetBool("show-rejected")
	compare, _ := cmd.Flags().GetBool("compare")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	if (from == 0) != (to == 0) {
		return fmt.Errorf("--from and --to must be given together")
	}
	if from > 0 && from > to {
		return fmt.Errorf("--from %d is after --to %d", from, to)
	}

	ctx := context.Background()
	client := openalex.NewClient(openAlexConfig(cmd))

	works, err := client.WorksByAuthor(ctx, authorArg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Fetched %d work(s) attributed to %s\n", len(works), authorArg)

	res := attribution.Filter(works, query, attribution.Policy{IncludeUnidentified: includeUnidentified})
	series := citations.Aggregate(res.Accepted)

	var seriesOut []types.YearCount
	if from > 0 {
		seriesOut = citations.Dense(series, from, to)
	} else {
		for _, y := range citations.Years(series) {
			seriesOut = append(seriesOut, types.YearCount{Year: y, CitedByCount: series[y]})
		}
	}

	var deltas []citations.Delta
	if compare {
		author, err := client.Author(ctx, authorArg)
		if err != nil {
			return fmt.Errorf("fetching author profile: %w", err)
		}
		deltas = citations.Compare(series, citations.FromCounts(author.CountsByYear))
	}

	if !noHistory {
		if err := recordRun(ctx, authorArg, res.Stats, series); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
		}
	}

	if savePath != "" {
		rep := report.Build(report.QueryInfo{
			Author:              authorArg,
			IncludeUnidentified: includeUnidentified,
			From:                from,
			To:                  to,
		}, res, series)
		if err := report.Write(savePath, rep); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved report to %s\n", savePath)
	}

	if jsonOutput {
		out := citationsOutput{
			Author:  authorArg,
			Series:  seriesOut,
			Stats:   res.Stats,
			Total:   citations.Total(series),
			Compare: deltas,
		}
		if showRejected {
			for _, rej := range res.Rejected {
				out.Rejected = append(out.Rejected, report.RejectedEntry{
					ID:     rej.Work.ID,
					Title:  rej.Work.Title,
					Year:   rej.Work.PublicationYear,
					Reason: string(rej.Reason),
				})
			}
		}
		return report.WriteJSON(out, os.Stdout)
	}

	report.WriteSeriesTable(seriesOut, res.Stats, os.Stdout)
	if compare {
		fmt.Fprintln(os.Stdout)
		report.WriteCompareTable(deltas, os.Stdout)
	}
	if showRejected && len(res.Rejected) > 0 {
		fmt.Fprintln(os.Stdout)
		report.WriteWorksTable(nil, res.Rejected, os.Stdout)
	}
	return nil
}

func recordRun(ctx context.Context, author string, stats attribution.Stats, series types.CitationSeries) error {
	s, err := store.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer s.Close()
	_, err = s.Record(ctx, author, stats, series)
	return err
}

func init() {
	citationsCmd.Flags().Int("from", 0, "dense series range start year (with --to)")
	citationsCmd.Flags().Int("to", 0, "dense series range end year (with --from)")
	citationsCmd.Flags().Bool("compare", false, "also fetch the Author entity's aggregate and print per-year deltas")
	citationsCmd.Flags().Bool("include-unidentified", false, "accept works whose author lists carry no identifiers (vetted records only)")
	citationsCmd.Flags().Bool("show-rejected", false, "list rejected works after the series")
	citationsCmd.Flags().Bool("json", false, "output as JSON")
	citationsCmd.Flags().String("save", "", "save a YAML audit report to this path")
	citationsCmd.Flags().Bool("no-history", false, "skip recording the run in the history database")

	rootCmd.AddCommand(citationsCmd)
}
