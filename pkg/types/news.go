// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds structs shared between the CLI and the internal packages.
package types

// NewsItem is one entry of the site's News section. Manual entries come from
// the JSON store; auto-discovered entries are derived from Semantic Scholar
// records. Items are immutable once created.
type NewsItem struct {
	// Date is an ISO-ish date string ("2024-06-03", or "<year>-01-01" when
	// only a year is known). The merged list sorts on it as a plain string.
	Date string `json:"date"`

	// Text is the display sentence for the entry.
	Text string `json:"text"`

	// URL is the best-available link for the entry, empty when none exists.
	URL string `json:"url,omitempty"`

	// LinkText overrides the rendered anchor text (defaults to "here").
	LinkText string `json:"link_text,omitempty"`

	// Source identifies where the entry came from ("semantic_scholar" for
	// auto-discovered entries; manual entries usually leave it empty).
	Source string `json:"source,omitempty"`

	// PaperID is the Semantic Scholar paper ID for auto-discovered entries.
	PaperID string `json:"paper_id,omitempty"`
}
