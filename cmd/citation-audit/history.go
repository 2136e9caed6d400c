// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-audit/internal/attribution"
	"github.com/pdiddy/citation-audit/internal/citations"
	"github.com/pdiddy/citation-audit/internal/report"
	"github.com/pdiddy/citation-audit/internal/store"
	"github.com/pdiddy/citation-audit/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past reconciliation runs",
	Long: `History reads the local SQLite ledger of reconciliation runs. Use list
to see recent runs and show to print the stored series of one run.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	author, _ := cmd.Flags().GetString("author")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := store.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.List(context.Background(), author)
	if err != nil {
		return err
	}

	if jsonOutput {
		return report.WriteJSON(runs, os.Stdout)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-25s  %-20s  %-8s  %-8s  %s\n",
		"ID", "Author", "When", "Accepted", "Rejected", "Citations")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 85))
	for _, r := range runs {
		rejected := r.Stats.NameOnly + r.Stats.NoIdentifier
		fmt.Fprintf(os.Stdout, "%-5d  %-25s  %-20s  %-8d  %-8d  %d\n",
			r.ID, r.Author, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Stats.Accepted, rejected, r.TotalCitations)
	}
	return nil
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the stored citation series of one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q", args[0])
	}
	jsonOutput, _ := cmd.Flags().GetBool("json")

	s, err := store.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	run, series, err := s.Get(context.Background(), id)
	if err != nil {
		return err
	}

	var seriesOut []types.YearCount
	for _, y := range citations.Years(series) {
		seriesOut = append(seriesOut, types.YearCount{Year: y, CitedByCount: series[y]})
	}

	if jsonOutput {
		out := struct {
			Run    store.Run         `json:"run"`
			Series []types.YearCount `json:"series"`
		}{run, seriesOut}
		return report.WriteJSON(out, os.Stdout)
	}

	fmt.Fprintf(os.Stdout, "Run %d: %s at %s\n\n", run.ID, run.Author,
		run.CreatedAt.Format("2006-01-02 15:04:05"))
	report.WriteSeriesTable(seriesOut, attribution.Stats{
		Accepted:     run.Stats.Accepted,
		NameOnly:     run.Stats.NameOnly,
		NoIdentifier: run.Stats.NoIdentifier,
	}, os.Stdout)
	return nil
}

func init() {
	historyListCmd.Flags().String("author", "", "restrict to one author query")
	historyListCmd.Flags().Bool("json", false, "output as JSON")
	historyShowCmd.Flags().Bool("json", false, "output as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
