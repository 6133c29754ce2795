package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/docseek/internal/config"
	"github.com/nhath/docseek/internal/history"
	"github.com/nhath/docseek/internal/search"
)

type fakeKeySource struct {
	key string
	err error
}

func (f fakeKeySource) APIKey() (string, error) { return f.key, f.err }

func ringWith(key string) func() (apiKeySource, error) {
	return func() (apiKeySource, error) { return fakeKeySource{key: key}, nil }
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	v := viper.New()
	v.Set("backend", config.BackendLocal)
	v.Set("index", "/tmp/docs.bleve")

	applyOverrides(cfg, v)

	assert.Equal(t, config.BackendLocal, cfg.Search.Backend)
	assert.Equal(t, "/tmp/docs.bleve", cfg.Search.IndexPath)
	assert.Empty(t, cfg.Search.Endpoint, "unset values keep the file config")
}

func TestResolveAPIKeyPrecedence(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		v := viper.New()
		v.Set("api-key", "from-flag")
		assert.Equal(t, "from-flag", resolveAPIKey(v, "from-file", ringWith("from-ring")))
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("DOCSEEK_API_KEY", "from-env")
		assert.Equal(t, "from-env", resolveAPIKey(newSettings(), "from-file", ringWith("from-ring")))
	})

	t.Run("keyring before file", func(t *testing.T) {
		assert.Equal(t, "from-ring", resolveAPIKey(viper.New(), "from-file", ringWith("from-ring")))
	})

	t.Run("file when keyring is empty", func(t *testing.T) {
		missing := func() (apiKeySource, error) {
			return fakeKeySource{err: errors.New("not found")}, nil
		}
		assert.Equal(t, "from-file", resolveAPIKey(viper.New(), "from-file", missing))
	})

	t.Run("file when keyring is unavailable", func(t *testing.T) {
		broken := func() (apiKeySource, error) { return nil, errors.New("no dbus") }
		assert.Equal(t, "from-file", resolveAPIKey(viper.New(), "from-file", broken))
	})
}

func TestLoadConfigRequiresEndpointForRemote(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "config.toml"))

	_, err := loadConfig(v, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")

	v.Set("endpoint", "https://search.example.com/query")
	cfg, err := loadConfig(v, ringWith("secret"))
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Search.APIKey)
}

func TestLoadSettingsSkipsValidation(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := loadSettings(v)
	require.NoError(t, err)
	assert.Equal(t, config.BackendRemote, cfg.Search.Backend)
}

func TestBuildClient(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.Endpoint = "https://search.example.com/query"
	client, closeClient, err := buildClient(cfg)
	require.NoError(t, err)
	defer closeClient()
	assert.IsType(t, &search.RemoteClient{}, client)

	cfg.Search.Backend = config.BackendLocal
	cfg.Search.IndexPath = filepath.Join(t.TempDir(), "missing.bleve")
	_, _, err = buildClient(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docseek index")
}

func TestPrintResults(t *testing.T) {
	cfg := config.DefaultConfig()
	grouped := search.GroupHits([]search.Hit{
		{Title: "createSignal", Content: "Creates a signal.", Path: "/reference/create-signal", Section: "reference"},
		{Title: "Signals", Path: "/concepts/signals", Section: "concepts"},
	})

	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, cfg, "signal", grouped))
	out := buf.String()

	assert.Contains(t, out, "Reference")
	assert.Contains(t, out, "https://docs.solidjs.com/reference/create-signal")
	assert.Contains(t, out, "Creates a signal.")
	assert.Less(t, strings.Index(out, "Reference"), strings.Index(out, "Concepts"))
}

func TestPrintResultsEmpty(t *testing.T) {
	cfg := config.DefaultConfig()

	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, cfg, "zzzzz", search.GroupHits(nil)))

	assert.Contains(t, buf.String(), `No results for "zzzzz"`)
	assert.Contains(t, buf.String(), "zzzzz%22")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Equal(t, "No searches recorded yet.\n", buf.String())

	buf.Reset()
	printHistory(&buf, []history.Entry{
		{Query: "signal", SelectedPath: "/reference/create-signal", HitCount: 3, SearchedAt: time.Now()},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "QUERY")
	assert.Contains(t, lines[1], "/reference/create-signal")
}

func TestPromptAPIKeyFromPipe(t *testing.T) {
	key, err := promptAPIKey(strings.NewReader("  abc123 \n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)

	_, err = promptAPIKey(strings.NewReader("\n"), &bytes.Buffer{})
	assert.Error(t, err)
}
