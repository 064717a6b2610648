package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeFile(t, "config.yaml", `
apikey: secret
baseurl: https://stats.example.com/api/
apiversion: v1
site_id: example.com
period: custom
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "https://stats.example.com/api/", cfg.BaseURL)
	assert.Equal(t, "v1", cfg.APIVersion)
	assert.Equal(t, "example.com", cfg.SiteID)
	assert.Equal(t, "custom", cfg.Period)
}

func TestLoad_MissingValues(t *testing.T) {
	path := writeFile(t, "config.yaml", `
apikey: secret
baseurl: https://stats.example.com/api/
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apiversion")
	assert.Contains(t, err.Error(), "site_id")
	assert.Contains(t, err.Error(), "period")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRegistry_GetSitesAndConfig(t *testing.T) {
	path := writeFile(t, "sites.ini", `
[example.com]
apikey     = secret
baseurl    = https://stats.example.com/api/
apiversion = v1
period     = custom

[other.org]
apikey     = other-secret
baseurl    = https://stats.other.org/api/
apiversion = v1
period     = custom
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	sites, err := registry.GetSites(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"example.com", "other.org"}, sites)

	cfg, err := registry.GetConfig(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", cfg.SiteID)
	assert.Equal(t, "secret", cfg.APIKey)
}

func TestRegistry_UnknownSite(t *testing.T) {
	path := writeFile(t, "sites.ini", `
[example.com]
apikey     = secret
baseurl    = https://stats.example.com/api/
apiversion = v1
period     = custom
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetConfig(context.Background(), "missing.dev")
	assert.Error(t, err)
}

func TestRegistry_IncompleteProfile(t *testing.T) {
	path := writeFile(t, "sites.ini", `
[example.com]
apikey = secret
`)

	registry, err := NewRegistry(path)
	require.NoError(t, err)

	_, err = registry.GetConfig(context.Background(), "example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseurl")
}
