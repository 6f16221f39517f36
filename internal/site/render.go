// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site renders the News fragment and patches it into the page
// between sentinel markers.
package site

import (
	"fmt"
	"strings"

	"github.com/marimo-lab/newsync/pkg/types"
)

// Sentinel comment lines delimiting the auto-managed region of the page.
const (
	MarkerStart = "<!-- NEWS_START -->"
	MarkerEnd   = "<!-- NEWS_END -->"
)

// RenderNews serializes the merged item list as the HTML fragment that
// lives between the sentinel markers, markers included. Indentation matches
// the managed region of index.html exactly; values are interpolated as-is
// (the store is trusted content authored by the lab).
//
// Items without a URL render no anchor; items with a URL and no link_text
// render the anchor text "here".
func RenderNews(items []types.NewsItem) string {
	var b strings.Builder
	b.WriteString("                " + MarkerStart + "\n")
	b.WriteString("                <div class=\"news\">\n")
	b.WriteString("                    <h2>News</h2>\n")
	b.WriteString("                    <ul>\n")

	for _, item := range items {
		b.WriteString("                        <li>\n")
		if item.URL != "" {
			linkText := item.LinkText
			if linkText == "" {
				linkText = "here"
			}
			fmt.Fprintf(&b, "                            <strong>%s</strong> - %s <a href=\"%s\"> %s </a>.\n",
				item.Date, item.Text, item.URL, linkText)
		} else {
			fmt.Fprintf(&b, "                            <strong>%s</strong> - %s\n", item.Date, item.Text)
		}
		b.WriteString("                        </li>\n")
	}

	b.WriteString("                    </ul>\n")
	b.WriteString("                </div>\n")
	b.WriteString("                " + MarkerEnd)
	return b.String()
}
