package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
source:
  path: journal.html
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "DAY", cfg.Variant)
	assert.Equal(t, "FILE", cfg.Source.Kind)
	assert.Equal(t, 1500, cfg.Watch.PollMillis)
	assert.Equal(t, 500, cfg.Watch.DebounceMillis)
	assert.Equal(t, "all", cfg.View.Mode)
	assert.Equal(t, "table", cfg.Table.Selector)
	assert.Equal(t, "tbody tr", cfg.Table.RowSelector)
	assert.Equal(t, "reports", cfg.Export.Dir)
}

func TestLoadConfigURLKindInferred(t *testing.T) {
	path := writeConfig(t, `
source:
  url: https://example.com/journal
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "URL", cfg.Source.Kind)
}

func TestLoadConfigInvalidVariant(t *testing.T) {
	path := writeConfig(t, `
variant: WEEKLY
source:
  path: journal.html
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid variant")
}

func TestLoadConfigMissingSourceTarget(t *testing.T) {
	path := writeConfig(t, `
source:
  kind: URL
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.url")
}

func TestLoadConfigInvalidViewMode(t *testing.T) {
	path := writeConfig(t, `
source:
  path: journal.html
view:
  mode: weekly
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view.mode")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
