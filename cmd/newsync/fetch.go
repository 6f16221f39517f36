// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marimo-lab/newsync/internal/httputil"
	"github.com/marimo-lab/newsync/internal/scholar"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and print publications without touching the site",
	Long: `Fetch queries Semantic Scholar for each configured author ID and prints
the deduplicated paper list. Nothing is written; use it to inspect what an
update run would see.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().Bool("json", false, "output papers as JSON")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	out := cmd.OutOrStdout()

	client := &scholar.Client{
		HTTPClient: httputil.NewClient(cfg.Fetch.HTTPConfig),
		APIKey:     cfg.Fetch.APIKey,
		UserAgent:  cfg.Fetch.UserAgent,
	}
	papers := client.FetchAuthorPapers(cmd.Context(), cfg.Fetch, os.Stderr)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return scholar.FormatJSON(papers, out)
	}
	scholar.FormatTable(papers, out)
	return nil
}
