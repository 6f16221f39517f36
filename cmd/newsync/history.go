// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marimo-lab/newsync/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List every paper the tool has ever discovered",
	Long: `History lists the paper archive: every publication any update or fetch
run has recorded, with the date it was first seen. Use --export to write
the archive as YAML.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("archive-dir", "", "directory of the paper archive (default data)")
	historyCmd.Flags().String("export", "", "write the archive as YAML to this file")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	store, err := archive.Open(cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		if err := store.ExportYAML(ctx, f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported archive to %s\n", exportPath)
		return nil
	}

	records, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "Archive is empty.")
		return nil
	}

	fmt.Fprintf(out, "%-20s  %-12s  %-60s  %s\n", "First seen", "Date", "Title", "Venue")
	for _, r := range records {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(out, "%-20s  %-12s  %-60s  %s\n", r.FirstSeen, r.Date, title, r.Venue)
	}
	fmt.Fprintf(out, "\n%d papers archived\n", len(records))
	return nil
}
