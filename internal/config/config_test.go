package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docseek", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFromBackfillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[search]
endpoint = "https://cloud.example.com/v1/indexes/docs"
limit = 5
`), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, "https://cloud.example.com/v1/indexes/docs", cfg.Search.Endpoint)
	assert.Equal(t, 5, cfg.Search.Limit)
	assert.Equal(t, BackendRemote, cfg.Search.Backend)
	assert.Equal(t, defaults.Site, cfg.Site)
	assert.Equal(t, defaults.UI, cfg.UI)
	assert.Equal(t, defaults.Keys, cfg.Keys)

	// defaults were persisted
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme_colors")
	assert.Contains(t, string(data), "ctrl+k")
}

func TestLoadFromBackfillsPartialTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
preview_style = "monokai"
debounce_ms = 200

[keys]
toggle = ["ctrl+p"]
`), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, "monokai", cfg.UI.PreviewStyle)
	assert.Equal(t, 200, cfg.UI.DebounceMs)
	assert.True(t, cfg.UI.WrapNavigation)
	assert.Equal(t, defaults.UI.DialogWidth, cfg.UI.DialogWidth)
	assert.Equal(t, defaults.UI.HistoryLimit, cfg.UI.HistoryLimit)

	assert.Equal(t, []string{"ctrl+p"}, cfg.Keys.Toggle)
	assert.Equal(t, defaults.Keys.Close, cfg.Keys.Close)
	assert.Equal(t, defaults.Keys.Quit, cfg.Keys.Quit)
}

func TestLoadFromKeepsExplicitZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
wrap_navigation = false
debounce_ms = 0
`), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.False(t, cfg.UI.WrapNavigation)
	assert.Equal(t, 0, cfg.UI.DebounceMs)

	// the back-filled file must read back the same way
	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search\nbroken"), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "remote backend without endpoint")

	cfg.Search.Endpoint = "https://cloud.example.com/v1/indexes/docs"
	assert.NoError(t, cfg.Validate())

	cfg.Search.Backend = BackendLocal
	cfg.Search.Endpoint = ""
	assert.NoError(t, cfg.Validate())

	cfg.Search.Backend = "elastic"
	assert.Error(t, cfg.Validate())

	cfg.Search.Backend = BackendLocal
	cfg.Site.Origin = "/relative"
	assert.Error(t, cfg.Validate())
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5*time.Second, cfg.Search.Timeout())
	assert.Equal(t, 120*time.Millisecond, cfg.UI.Debounce())
	assert.Equal(t, 3*time.Second, cfg.Site.PrefetchTimeout())
}
