// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"strings"
	"testing"

	"github.com/marimo-lab/newsync/pkg/types"
)

func TestRenderNewsBoundedByMarkers(t *testing.T) {
	got := RenderNews(nil)
	if !strings.HasSuffix(got, MarkerEnd) {
		t.Errorf("fragment does not end with %q:\n%s", MarkerEnd, got)
	}
	firstLine := got[:strings.Index(got, "\n")]
	if !strings.HasSuffix(firstLine, MarkerStart) {
		t.Errorf("first line %q does not end with %q", firstLine, MarkerStart)
	}
	if !strings.Contains(got, "<h2>News</h2>") {
		t.Errorf("fragment missing News heading:\n%s", got)
	}
}

func TestRenderNewsEntries(t *testing.T) {
	tests := []struct {
		name        string
		item        types.NewsItem
		wantParts   []string
		absentParts []string
	}{
		{
			name: "entry with url defaults anchor text to here",
			item: types.NewsItem{Date: "2024-06-03", Text: "Paper published", URL: "https://doi.org/10.1038/x"},
			wantParts: []string{
				"<strong>2024-06-03</strong> - Paper published",
				`<a href="https://doi.org/10.1038/x"> here </a>.`,
			},
		},
		{
			name: "entry with explicit link text",
			item: types.NewsItem{Date: "2023-11-15", Text: "Retreat photos", URL: "https://lab.example.org/retreat", LinkText: "gallery"},
			wantParts: []string{
				`<a href="https://lab.example.org/retreat"> gallery </a>.`,
			},
		},
		{
			name:        "entry without url has no anchor",
			item:        types.NewsItem{Date: "2023-01-01", Text: "No link entry"},
			wantParts:   []string{"<strong>2023-01-01</strong> - No link entry"},
			absentParts: []string{"<a href"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderNews([]types.NewsItem{tt.item})
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("fragment missing %q:\n%s", part, got)
				}
			}
			for _, part := range tt.absentParts {
				if strings.Contains(got, part) {
					t.Errorf("fragment unexpectedly contains %q:\n%s", part, got)
				}
			}
		})
	}
}

func TestRenderNewsPreservesOrder(t *testing.T) {
	items := []types.NewsItem{
		{Date: "2025-02-10", Text: "newest"},
		{Date: "2024-08-20", Text: "middle"},
		{Date: "2023-06-01", Text: "oldest"},
	}
	got := RenderNews(items)

	iNew := strings.Index(got, "newest")
	iMid := strings.Index(got, "middle")
	iOld := strings.Index(got, "oldest")
	if !(iNew < iMid && iMid < iOld) {
		t.Errorf("entries out of order: newest@%d middle@%d oldest@%d", iNew, iMid, iOld)
	}
}
