// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar fetches an author's publications from the Semantic
// Scholar Graph API.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/marimo-lab/newsync/pkg/types"
)

// apiBase is the Semantic Scholar Graph API root. Declared as a var so
// tests can substitute an httptest server.
var apiBase = "https://api.semanticscholar.org/graph/v1"

const paperFields = "title,publicationDate,year,externalIds,url,venue"

// Paper is one raw record from the author-papers endpoint.
type Paper struct {
	PaperID         string      `json:"paperId"`
	Title           string      `json:"title"`
	PublicationDate string      `json:"publicationDate"`
	Year            int         `json:"year"`
	ExternalIDs     ExternalIDs `json:"externalIds"`
	URL             string      `json:"url"`
	Venue           string      `json:"venue"`
}

// ExternalIDs holds the identifiers Semantic Scholar knows for a paper.
type ExternalIDs struct {
	DOI   string `json:"DOI"`
	ArXiv string `json:"ArXiv"`
}

type papersResponse struct {
	Data []Paper `json:"data"`
}

// Client queries the Semantic Scholar API.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	UserAgent  string
}

// FetchAuthorPapers queries each configured author ID once, sequentially,
// and returns the union of their papers deduplicated by paper ID in
// first-seen order. Author profiles can be fragmented, so the same paper
// routinely appears under several IDs.
//
// Each request is attempted exactly once. A failed author query is logged
// as a warning to w and contributes nothing; the run continues with the
// papers gathered so far.
func (c *Client) FetchAuthorPapers(ctx context.Context, cfg types.FetchConfig, w io.Writer) []Paper {
	seen := make(map[string]struct{})
	var papers []Paper

	for _, authorID := range cfg.AuthorIDs {
		page, err := c.fetchAuthor(ctx, authorID, cfg.Limit)
		if err != nil {
			fmt.Fprintf(w, "Warning: failed to fetch papers for author %s: %v\n", authorID, err)
			continue
		}
		for _, p := range page {
			if p.PaperID == "" {
				continue
			}
			if _, ok := seen[p.PaperID]; ok {
				continue
			}
			seen[p.PaperID] = struct{}{}
			papers = append(papers, p)
		}
	}
	return papers
}

func (c *Client) fetchAuthor(ctx context.Context, authorID string, limit int) ([]Paper, error) {
	if limit <= 0 {
		limit = 100
	}

	params := url.Values{
		"fields": {paperFields},
		"limit":  {fmt.Sprintf("%d", limit)},
	}
	reqURL := fmt.Sprintf("%s/author/%s/papers?%s", apiBase, url.PathEscape(authorID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var pr papersResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return pr.Data, nil
}

// FormatTable writes papers as a human-readable table to w.
func FormatTable(papers []Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-12s  %-60s  %-24s  %s\n", "Date", "Title", "Venue", "DOI")
	fmt.Fprintln(w, "----------------------------------------------------------------------------------------------------------")

	for _, p := range papers {
		date := p.PublicationDate
		if date == "" && p.Year > 0 {
			date = fmt.Sprintf("%d", p.Year)
		}
		title := truncate(p.Title, 60)
		venue := truncate(p.Venue, 24)
		fmt.Fprintf(w, "%-12s  %-60s  %-24s  %s\n", date, title, venue, p.ExternalIDs.DOI)
	}
	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
