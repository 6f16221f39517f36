// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"fmt"
	"io"
	"os"
	"regexp"
)

// markerSpan matches everything between the sentinel markers, inclusive,
// non-greedy and across lines.
var markerSpan = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(MarkerStart) + `.*?` + regexp.QuoteMeta(MarkerEnd))

// UpdateIndex replaces the marker-delimited span of the page at path with
// fragment and reports whether the file changed.
//
// Missing markers are an error: the write is skipped and the caller decides
// whether that ends the run. A byte-identical replacement skips the write
// and reports no change.
func UpdateIndex(path, fragment string, w io.Writer) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	if !markerSpan.MatchString(content) {
		return false, fmt.Errorf("could not find %s/%s markers in %s", MarkerStart, MarkerEnd, path)
	}

	updated := markerSpan.ReplaceAllLiteralString(content, fragment)
	if updated == content {
		fmt.Fprintf(w, "No changes to %s\n", path)
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "Updated %s\n", path)
	return true, nil
}
