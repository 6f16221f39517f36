// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKey(t *testing.T) {
	t.Run("reads and trims the key file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "semantic-scholar-api-key"), []byte("  sk_xyz789 \n"), 0o600))
		assert.Equal(t, "sk_xyz789", APIKey(dir))
	})

	t.Run("missing file yields empty string", func(t *testing.T) {
		assert.Equal(t, "", APIKey(t.TempDir()))
	})

	t.Run("missing directory yields empty string", func(t *testing.T) {
		assert.Equal(t, "", APIKey(filepath.Join(t.TempDir(), "does-not-exist")))
	})
}
