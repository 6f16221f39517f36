// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marimo-lab/newsync/internal/archive"
	"github.com/marimo-lab/newsync/internal/httputil"
	"github.com/marimo-lab/newsync/internal/news"
	"github.com/marimo-lab/newsync/internal/scholar"
	"github.com/marimo-lab/newsync/internal/site"
	"github.com/marimo-lab/newsync/pkg/types"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch publications and rewrite the News section",
	Long: `Update runs the full pipeline: load manual entries from the news store,
fetch publications from Semantic Scholar for each configured author ID,
merge the two lists deduplicating by URL and DOI, save the merged store,
and rewrite the marker-delimited News region of the page.

With --dry-run the generated HTML fragment is printed and nothing is
written: not the store, not the page, not the paper archive.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Bool("dry-run", false, "print the generated HTML without writing anything")
	updateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	updateCmd.Flags().String("news-json", "", "path of the manual news store (default data/news.json)")
	updateCmd.Flags().String("index-html", "", "path of the page to patch (default index.html)")
	updateCmd.Flags().String("archive-dir", "", "directory of the paper archive (default data)")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	cfg := loadConfig(cmd)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Loading manual news entries...")
	manual, err := news.Load(cfg.Site.NewsJSON)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  %d manual entries\n", len(manual))

	fmt.Fprintln(out, "Fetching publications from Semantic Scholar...")
	client := &scholar.Client{
		HTTPClient: httputil.NewClient(cfg.Fetch.HTTPConfig),
		APIKey:     cfg.Fetch.APIKey,
		UserAgent:  cfg.Fetch.UserAgent,
	}
	papers := client.FetchAuthorPapers(ctx, cfg.Fetch, os.Stderr)
	fmt.Fprintf(out, "  %d papers found\n", len(papers))

	auto := mapPapers(papers)

	fmt.Fprintln(out, "Merging news items...")
	merged, accepted := news.Merge(manual, auto)
	if accepted > 0 {
		fmt.Fprintf(out, "Found %d new publication(s) from Semantic Scholar\n", accepted)
	}
	fmt.Fprintf(out, "  %d total entries\n", len(merged))

	if !dryRun {
		recordArchive(ctx, cfg.Archive, papers)
	}

	fragment := site.RenderNews(merged)

	if dryRun {
		fmt.Fprintln(out, "\n--- Generated HTML (dry run) ---")
		fmt.Fprintln(out, fragment)
		return nil
	}

	if err := news.Save(cfg.Site.NewsJSON, merged); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s\n", cfg.Site.NewsJSON)

	changed, err := site.UpdateIndex(cfg.Site.IndexHTML, fragment, out)
	if err != nil {
		// The store is already saved; a page patch failure is reported
		// but does not fail the run.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil
	}
	if changed {
		fmt.Fprintln(out, "Done! Page updated with latest news.")
	} else {
		fmt.Fprintln(out, "Done! No changes needed.")
	}
	return nil
}

// mapPapers converts fetched records into news items, dropping the ones
// without a usable title or date.
func mapPapers(papers []scholar.Paper) []types.NewsItem {
	var items []types.NewsItem
	for _, p := range papers {
		if item, ok := news.FromPaper(p); ok {
			items = append(items, item)
		}
	}
	return items
}

// recordArchive folds the fetched papers into the archive database. The
// archive is an audit aid, so failures warn rather than abort the run.
func recordArchive(ctx context.Context, cfg types.ArchiveConfig, papers []scholar.Paper) {
	store, err := archive.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open paper archive: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, papers); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not update paper archive: %v\n", err)
	}
}
