package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Load(t *testing.T) {
	t.Run("missing file is empty registry", func(t *testing.T) {
		r := New(filepath.Join(t.TempDir(), "artists.json"))
		artists, err := r.Load()
		require.NoError(t, err)
		assert.NotNil(t, artists)
		assert.Empty(t, artists)
	})

	t.Run("preserves order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "artists.json")
		content := `["https://c.bandcamp.com", "https://a.bandcamp.com", "not even a url"]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		artists, err := New(path).Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://c.bandcamp.com", "https://a.bandcamp.com", "not even a url"}, artists)
	})

	t.Run("empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "artists.json")
		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

		artists, err := New(path).Load()
		require.NoError(t, err)
		assert.Empty(t, artists)
	})

	t.Run("malformed content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "artists.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0o644))

		_, err := New(path).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse registry")
	})

	t.Run("path is a directory", func(t *testing.T) {
		_, err := New(t.TempDir()).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read registry")
	})
}

func TestRegistry_Add(t *testing.T) {
	t.Run("add to missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "artists.json")
		r := New(path)

		added, err := r.Add("https://a.bandcamp.com")
		require.NoError(t, err)
		assert.True(t, added)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[\n    \"https://a.bandcamp.com\"\n]", string(data))
	})

	t.Run("appends in order", func(t *testing.T) {
		r := New(filepath.Join(t.TempDir(), "artists.json"))

		for _, u := range []string{"https://b.bandcamp.com", "https://a.bandcamp.com", "https://c.bandcamp.com"} {
			added, err := r.Add(u)
			require.NoError(t, err)
			assert.True(t, added)
		}

		artists, err := r.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://b.bandcamp.com", "https://a.bandcamp.com", "https://c.bandcamp.com"}, artists)
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "artists.json")
		r := New(path)

		_, err := r.Add("https://a.bandcamp.com")
		require.NoError(t, err)
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		added, err := r.Add("https://a.bandcamp.com")
		require.NoError(t, err)
		assert.False(t, added)

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("exact match only", func(t *testing.T) {
		r := New(filepath.Join(t.TempDir(), "artists.json"))

		_, err := r.Add("https://a.bandcamp.com")
		require.NoError(t, err)
		added, err := r.Add("https://a.bandcamp.com/")
		require.NoError(t, err)
		assert.True(t, added)

		artists, err := r.Load()
		require.NoError(t, err)
		assert.Len(t, artists, 2)
	})

	t.Run("malformed registry is not overwritten", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "artists.json")
		require.NoError(t, os.WriteFile(path, []byte(`garbage`), 0o644))

		added, err := New(path).Add("https://a.bandcamp.com")
		require.Error(t, err)
		assert.False(t, added)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "garbage", string(data))
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		r := New(filepath.Join(dir, "artists.json"))
		_, err := r.Add("https://a.bandcamp.com")
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "artists.json", entries[0].Name())
	})
}

func TestRegistry_Contains(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "artists.json"))

	found, err := r.Contains("https://a.bandcamp.com")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = r.Add("https://a.bandcamp.com")
	require.NoError(t, err)

	found, err = r.Contains("https://a.bandcamp.com")
	require.NoError(t, err)
	assert.True(t, found)
}
