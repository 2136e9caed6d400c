// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citation-audit/internal/attribution"
	"github.com/pdiddy/citation-audit/internal/openalex"
	"github.com/pdiddy/citation-audit/internal/report"
	"github.com/pdiddy/citation-audit/pkg/types"
)

var worksCmd = &cobra.Command{
	Use:   "works <author-id>",
	Short: "List an author's works with per-work filter decisions",
	Long: `Works fetches every work OpenAlex attributes to the author and prints
each with its attribution decision. By default only accepted works are
listed; --all includes the rejected attributions so the record can be
audited by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorks,
}

func runWorks(cmd *cobra.Command, args []string) error {
	authorArg := args[0]
	query, err := attribution.ParseQuery(authorArg)
	if err != nil {
		return err
	}

	includeUnidentified, _ := cmd.Flags().GetBool("include-unidentified")
	all, _ := cmd.Flags().GetBool("all")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := context.Background()
	client := openalex.NewClient(openAlexConfig(cmd))

	works, err := client.WorksByAuthor(ctx, authorArg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Fetched %d work(s) attributed to %s\n", len(works), authorArg)

	res := attribution.Filter(works, query, attribution.Policy{IncludeUnidentified: includeUnidentified})

	rejected := res.Rejected
	if !all {
		rejected = nil
	}

	if jsonOutput {
		out := struct {
			Accepted []types.Work               `json:"accepted"`
			Rejected []attribution.RejectedWork `json:"rejected,omitempty"`
			Stats    attribution.Stats          `json:"stats"`
		}{res.Accepted, rejected, res.Stats}
		return report.WriteJSON(out, os.Stdout)
	}

	report.WriteWorksTable(res.Accepted, rejected, os.Stdout)
	return nil
}

func init() {
	worksCmd.Flags().Bool("all", false, "include rejected attributions in the listing")
	worksCmd.Flags().Bool("include-unidentified", false, "accept works whose author lists carry no identifiers (vetted records only)")
	worksCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(worksCmd)
}
