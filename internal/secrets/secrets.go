// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the Semantic Scholar API key from a plain-text file
// so it stays out of the config file and shell history.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

const apiKeyFile = "semantic-scholar-api-key"

// APIKey returns the trimmed contents of dir/semantic-scholar-api-key, or
// an empty string when the directory or file does not exist. The API works
// without a key at a lower rate limit, so absence is never an error.
func APIKey(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, apiKeyFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
