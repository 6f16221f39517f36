// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package news holds the news item store, the Semantic Scholar record
// mapper, and the merge/dedup core that combines manual and auto-discovered
// entries.
package news

import (
	"sort"
	"strings"

	"github.com/marimo-lab/newsync/pkg/types"
)

// Merge combines manual and auto-discovered items, deduplicating by URL and
// by DOI equivalence, and returns the merged list sorted by date descending
// plus the number of auto items accepted.
//
// Manual items are never dropped. An auto item is skipped when it has no
// URL, when its trailing-slash-trimmed URL was already seen, or when any of
// its extracted DOIs matches one already seen; otherwise it is appended and
// its URL and DOIs join the tracking sets, so later auto items deduplicate
// against earlier accepted ones too. URL matching is the fast path; DOI
// matching catches the same paper surfacing under differently-shaped URLs.
//
// The sort compares the date strings directly (no calendar parsing) and is
// stable, so items with equal dates keep their relative input order.
func Merge(manual, auto []types.NewsItem) ([]types.NewsItem, int) {
	existingURLs := make(map[string]struct{})
	existingDOIs := make(map[string]struct{})

	for _, item := range manual {
		if item.URL == "" {
			continue
		}
		existingURLs[strings.TrimRight(item.URL, "/")] = struct{}{}
		for doi := range ExtractDOIs(item.URL) {
			existingDOIs[doi] = struct{}{}
		}
	}

	merged := make([]types.NewsItem, len(manual), len(manual)+len(auto))
	copy(merged, manual)

	accepted := 0
	for _, item := range auto {
		if item.URL == "" {
			continue
		}
		trimmed := strings.TrimRight(item.URL, "/")
		if _, ok := existingURLs[trimmed]; ok {
			continue
		}
		itemDOIs := ExtractDOIs(item.URL)
		if doiOverlap(itemDOIs, existingDOIs) {
			continue
		}

		merged = append(merged, item)
		existingURLs[trimmed] = struct{}{}
		for doi := range itemDOIs {
			existingDOIs[doi] = struct{}{}
		}
		accepted++
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	return merged, accepted
}
