// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"fmt"
	"strings"

	"github.com/marimo-lab/newsync/internal/scholar"
	"github.com/marimo-lab/newsync/pkg/types"
)

// FromPaper converts a Semantic Scholar record into a news item. It returns
// ok=false when the record has no usable title or lacks both a publication
// date and a year.
//
// The date prefers the explicit publication date string and falls back to
// "<year>-01-01". The URL prefers the DOI link, then the arXiv abstract
// link, then the provider-native record URL, and may end up empty.
func FromPaper(p scholar.Paper) (types.NewsItem, bool) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return types.NewsItem{}, false
	}

	var date string
	switch {
	case p.PublicationDate != "":
		date = p.PublicationDate
	case p.Year > 0:
		date = fmt.Sprintf("%d-01-01", p.Year)
	default:
		return types.NewsItem{}, false
	}

	var url string
	switch {
	case p.ExternalIDs.DOI != "":
		url = "https://doi.org/" + p.ExternalIDs.DOI
	case p.ExternalIDs.ArXiv != "":
		url = "https://arxiv.org/abs/" + p.ExternalIDs.ArXiv
	default:
		url = p.URL
	}

	var text string
	if p.Venue != "" {
		text = fmt.Sprintf(`Our paper "%s" published in %s`, title, p.Venue)
	} else {
		text = fmt.Sprintf(`Our paper "%s" is available`, title)
	}

	return types.NewsItem{
		Date:    date,
		Text:    text,
		URL:     url,
		Source:  "semantic_scholar",
		PaperID: p.PaperID,
	}, true
}
