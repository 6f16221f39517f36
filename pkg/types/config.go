package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "newsync/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the Semantic Scholar fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// AuthorIDs lists the Semantic Scholar author IDs to query. Fragmented
	// author profiles mean one person can own several IDs.
	AuthorIDs []string `json:"author_ids" yaml:"author_ids"`

	// Limit is the maximum number of papers requested per author (default 100).
	Limit int `json:"limit" yaml:"limit"`

	// APIKey is an optional Semantic Scholar API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// SiteConfig holds the paths of the files the tool reads and rewrites.
type SiteConfig struct {
	// NewsJSON is the path of the manual news store (default "data/news.json").
	NewsJSON string `json:"news_json" yaml:"news_json"`

	// IndexHTML is the path of the page whose News section is patched
	// (default "index.html").
	IndexHTML string `json:"index_html" yaml:"index_html"`
}

// ArchiveConfig holds settings for the paper archive database.
type ArchiveConfig struct {
	// Dir is the directory holding archive.db (default "data").
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all stage configurations for one run.
type Config struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
	Site    SiteConfig    `json:"site" yaml:"site"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
}
