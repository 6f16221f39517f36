// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/marimo-lab/newsync/internal/secrets"
	"github.com/marimo-lab/newsync/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultLimit     = 100
	defaultUserAgent = "newsync/0.1"
	defaultNewsJSON  = "data/news.json"
	defaultIndexHTML = "index.html"
	defaultArchive   = "data"
	secretsDir       = ".secrets"
)

// defaultAuthorIDs are the Semantic Scholar author IDs of the lab head.
// The profile is fragmented across several IDs, so all of them are queried.
var defaultAuthorIDs = []string{"2275825472", "1944920685", "2127367730", "2283043684"}

// loadConfig assembles the run configuration. Precedence: command flag,
// then config file / environment via viper, then built-in default. The
// Semantic Scholar API key additionally falls back to .secrets/.
func loadConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   defaultTimeout,
				UserAgent: defaultUserAgent,
			},
			AuthorIDs: defaultAuthorIDs,
			Limit:     defaultLimit,
		},
		Site: types.SiteConfig{
			NewsJSON:  defaultNewsJSON,
			IndexHTML: defaultIndexHTML,
		},
		Archive: types.ArchiveConfig{
			Dir: defaultArchive,
		},
	}

	if ids := viper.GetStringSlice("fetch.author_ids"); len(ids) > 0 {
		cfg.Fetch.AuthorIDs = ids
	}
	if limit := viper.GetInt("fetch.limit"); limit > 0 {
		cfg.Fetch.Limit = limit
	}
	if ua := viper.GetString("fetch.user_agent"); ua != "" {
		cfg.Fetch.UserAgent = ua
	}
	if d := viper.GetDuration("fetch.timeout"); d > 0 {
		cfg.Fetch.Timeout = d
	}
	if p := viper.GetString("site.news_json"); p != "" {
		cfg.Site.NewsJSON = p
	}
	if p := viper.GetString("site.index_html"); p != "" {
		cfg.Site.IndexHTML = p
	}
	if dir := viper.GetString("archive.dir"); dir != "" {
		cfg.Archive.Dir = dir
	}

	if cmd != nil {
		if d, _ := cmd.Flags().GetDuration("timeout"); d > 0 {
			cfg.Fetch.Timeout = d
		}
		if p, _ := cmd.Flags().GetString("news-json"); p != "" {
			cfg.Site.NewsJSON = p
		}
		if p, _ := cmd.Flags().GetString("index-html"); p != "" {
			cfg.Site.IndexHTML = p
		}
		if dir, _ := cmd.Flags().GetString("archive-dir"); dir != "" {
			cfg.Archive.Dir = dir
		}
	}

	cfg.Fetch.APIKey = viper.GetString("fetch.api_key")
	if cfg.Fetch.APIKey == "" {
		cfg.Fetch.APIKey = secrets.APIKey(secretsDir)
	}

	return cfg
}
