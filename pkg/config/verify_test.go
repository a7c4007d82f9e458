package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			modify: func(cfg *Config) {},
		},
		{
			name:    "missing registry path",
			modify:  func(cfg *Config) { cfg.Registry.Path = "" },
			wantErr: true,
			errMsg:  "registry.path is required",
		},
		{
			name:    "missing feed path",
			modify:  func(cfg *Config) { cfg.Feed.Path = "" },
			wantErr: true,
			errMsg:  "feed.path is required",
		},
		{
			name:    "missing feed title",
			modify:  func(cfg *Config) { cfg.Feed.Title = "" },
			wantErr: true,
			errMsg:  "feed.title is required",
		},
		{
			name:    "missing fetch timeout",
			modify:  func(cfg *Config) { cfg.Fetch.Timeout = 0 },
			wantErr: true,
			errMsg:  "fetch.timeout is required",
		},
		{
			name:    "missing server listen",
			modify:  func(cfg *Config) { cfg.Server.Listen = "" },
			wantErr: true,
			errMsg:  "server.listen is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckSections(t *testing.T) {
	schema := map[string]any{
		"$defs": map[string]any{
			"Config": map[string]any{
				"properties": map[string]any{"feed": map[string]any{}},
			},
		},
	}

	require.NoError(t, checkSections(schema, map[string]any{"feed": nil}))

	err := checkSections(schema, map[string]any{"feed": nil, "server": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `section "server" is not declared`)

	err = checkSections(map[string]any{}, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no $defs in schema")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
	require.NotNil(t, schema.Definitions)
	assert.Contains(t, schema.Definitions, "Config")
	assert.Contains(t, schema.Definitions, "FeedConfig")
}
