// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package news

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marimo-lab/newsync/pkg/types"
)

// Load reads the manual news store at path. A missing file is not an error
// and yields an empty list; malformed JSON or an unreadable file is.
func Load(path string) ([]types.NewsItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.NewsItem{}, nil
		}
		return nil, fmt.Errorf("reading news store %s: %w", path, err)
	}

	var items []types.NewsItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing news store %s: %w", path, err)
	}
	return items, nil
}

// Save writes the merged news list back to path as two-space-indented JSON
// with a trailing newline. HTML escaping is disabled so URLs and quotes stay
// readable in the store.
func Save(path string, items []types.NewsItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing news store %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		f.Close()
		return fmt.Errorf("encoding news store %s: %w", path, err)
	}
	return f.Close()
}
