package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, writeSchema(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	var schema struct {
		Defs map[string]struct {
			Properties map[string]any `json:"properties"`
		} `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal(data, &schema))

	root, ok := schema.Defs["Config"]
	require.True(t, ok, "Config definition present")
	for _, section := range []string{"registry", "feed", "fetch", "server"} {
		assert.Contains(t, root.Properties, section)
	}
	assert.Contains(t, schema.Defs["ServerConfig"].Properties, "refresh")
	assert.Contains(t, schema.Defs["FeedConfig"].Properties, "title")
}

func TestWriteSchema_BadPath(t *testing.T) {
	err := writeSchema(filepath.Join(t.TempDir(), "missing", "schema.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write schema")
}
