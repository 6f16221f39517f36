// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"sort"
	"testing"
)

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "10.1038/S41586-024-07177-7", "10.1038/s41586-024-07177-7"},
		{"strips trailing slash", "10.1101/2024.01.01.573801/", "10.1101/2024.01.01.573801"},
		{"strips multiple trailing slashes", "10.1101/2024.01.01.573801//", "10.1101/2024.01.01.573801"},
		{"strips preprint version suffix", "10.1101/2024.01.01.573801v2", "10.1101/2024.01.01.573801"},
		{"strips version after slash trim", "10.1101/2024.01.01.573801v3/", "10.1101/2024.01.01.573801"},
		{"leaves embedded v alone", "10.1234/v2engine.55", "10.1234/v2engine.55"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDOI(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeDOI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDOIIdempotent(t *testing.T) {
	inputs := []string{
		"10.1038/S41586-024-07177-7",
		"10.1101/2024.01.01.573801v2/",
		"10.48550/arXiv.2301.07041",
		"",
	}
	for _, in := range inputs {
		once := NormalizeDOI(in)
		twice := NormalizeDOI(once)
		if once != twice {
			t.Errorf("NormalizeDOI not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestExtractDOIs(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want []string
	}{
		{
			name: "plain doi.org link",
			url:  "https://doi.org/10.1038/s41586-024-07177-7",
			want: []string{"10.1038/s41586-024-07177-7"},
		},
		{
			name: "publisher URL with extra path segments adds prefixes",
			url:  "https://academic.oup.com/pnasnexus/article/10.1093/pnasnexus/pgae323/7731083",
			want: []string{
				"10.1093/pnasnexus",
				"10.1093/pnasnexus/pgae323",
				"10.1093/pnasnexus/pgae323/7731083",
			},
		},
		{
			name: "nature article slug synthesizes 10.1038 DOI",
			url:  "https://www.nature.com/articles/s41592-023-02080-x",
			want: []string{"10.1038/s41592-023-02080-x"},
		},
		{
			name: "arxiv abstract synthesizes datacite DOI",
			url:  "https://arxiv.org/abs/2301.07041",
			want: []string{"10.48550/arxiv.2301.07041"},
		},
		{
			name: "biorxiv version suffix stripped",
			url:  "https://www.biorxiv.org/content/10.1101/2024.01.01.573801v2",
			want: []string{"10.1101/2024.01.01.573801"},
		},
		{"empty url", "", nil},
		{"no DOI-like substring", "https://example.com/blog/post-42", nil},
		{"registrant too short", "https://example.com/10.123/abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDOIs(tt.url)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractDOIs(%q) = %v, want %v", tt.url, keys(got), tt.want)
			}
			for _, doi := range tt.want {
				if _, ok := got[doi]; !ok {
					t.Errorf("ExtractDOIs(%q) missing %q (got %v)", tt.url, doi, keys(got))
				}
			}
		})
	}
}

func TestDOIOverlap(t *testing.T) {
	a := ExtractDOIs("https://doi.org/10.1038/s41586-1")
	b := ExtractDOIs("https://www.nature.com/articles/s41586-1")
	if !doiOverlap(a, b) {
		t.Errorf("expected DOI overlap between doi.org and nature.com forms")
	}

	c := ExtractDOIs("https://doi.org/10.1101/2024.01.01.573801")
	if doiOverlap(a, c) {
		t.Errorf("unexpected overlap between unrelated DOIs")
	}
	if doiOverlap(a, ExtractDOIs("")) {
		t.Errorf("unexpected overlap with empty set")
	}
}

func keys(set map[string]struct{}) []string {
	var out []string
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
