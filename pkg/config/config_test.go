package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
registry:
  path: /data/artists.json

feed:
  path: /data/out/feed.xml
  title: My Releases
  link: https://example.com/feed.xml
  description: releases I follow

fetch:
  timeout: 10s
  user_agent: test-agent

server:
  listen: ":9090"
  timeout: 45s
  refresh: 2h
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "/data/artists.json", cfg.Registry.Path)
		assert.Equal(t, "/data/out/feed.xml", cfg.Feed.Path)
		assert.Equal(t, "My Releases", cfg.Feed.Title)
		assert.Equal(t, "https://example.com/feed.xml", cfg.Feed.Link)
		assert.Equal(t, "releases I follow", cfg.Feed.Description)
		assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
		assert.Equal(t, "test-agent", cfg.Fetch.UserAgent)
		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 2*time.Hour, cfg.Server.Refresh)
	})

	t.Run("defaults", func(t *testing.T) {
		configContent := `
feed:
  title: Only Title
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "artists.json", cfg.Registry.Path)
		assert.Equal(t, "docs/bandcamp_releases.xml", cfg.Feed.Path)
		assert.Equal(t, "Only Title", cfg.Feed.Title)
		assert.Equal(t, "https://bandcamp.com", cfg.Feed.Link)
		assert.Equal(t, "Latest releases from followed Bandcamp artists", cfg.Feed.Description)
		assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
		assert.Contains(t, cfg.Fetch.UserAgent, "Mozilla/5.0")
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Zero(t, cfg.Server.Refresh)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("BANDFEED_TEST_DIR", "/srv/bandfeed")
		configContent := `
registry:
  path: ${BANDFEED_TEST_DIR}/artists.json
`
		configPath := filepath.Join(t.TempDir(), "env.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "/srv/bandfeed/artists.json", cfg.Registry.Path)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("relative feed link", func(t *testing.T) {
		configContent := `
feed:
  link: /not/absolute
`
		configPath := filepath.Join(t.TempDir(), "bad-link.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "feed.link must be an absolute URL")
	})

	t.Run("fetch timeout too small", func(t *testing.T) {
		configContent := `
fetch:
  timeout: 100ms
`
		configPath := filepath.Join(t.TempDir(), "bad-timeout.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		_, err := Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch timeout must be at least 1 second")
	})

	t.Run("refresh too frequent", func(t *testing.T) {
		configContent := `
server:
  refresh: 10s
`
		configPath := filepath.Join(t.TempDir(), "bad-refresh.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

		_, err := Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server refresh must be at least 1 minute")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "artists.json", cfg.Registry.Path)
	assert.Equal(t, "docs/bandcamp_releases.xml", cfg.GetFeedPath())
	require.NoError(t, validate(cfg))
}

func TestConfig_GetServerConfig(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Listen: ":9090", Timeout: 45 * time.Second}}

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
}
