package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// default values, shared by Load and Default
const (
	defaultRegistryPath    = "artists.json"
	defaultFeedPath        = "docs/bandcamp_releases.xml"
	defaultFeedTitle       = "Bandcamp Releases RSS"
	defaultFeedLink        = "https://bandcamp.com"
	defaultFeedDescription = "Latest releases from followed Bandcamp artists"
	defaultFetchTimeout    = 30 * time.Second
	defaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
	defaultListen          = ":8080"
	defaultServerTimeout   = 30 * time.Second
)

// Config holds the application configuration
type Config struct {
	Registry RegistryConfig `yaml:"registry" json:"registry" jsonschema:"description=Artist registry configuration"`
	Feed     FeedConfig     `yaml:"feed" json:"feed" jsonschema:"description=Generated feed configuration"`
	Fetch    FetchConfig    `yaml:"fetch" json:"fetch" jsonschema:"description=Artist page fetching configuration"`
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Feed server configuration"`
}

// RegistryConfig holds the location of the followed artists list
type RegistryConfig struct {
	Path string `yaml:"path" json:"path" jsonschema:"default=artists.json,description=JSON file with followed artist URLs"`
}

// FeedConfig holds output location and channel metadata of the generated feed
type FeedConfig struct {
	Path        string `yaml:"path" json:"path" jsonschema:"default=docs/bandcamp_releases.xml,description=Output RSS file"`
	Title       string `yaml:"title" json:"title" jsonschema:"default=Bandcamp Releases RSS,description=Channel title"`
	Link        string `yaml:"link" json:"link" jsonschema:"default=https://bandcamp.com,description=Channel link and atom self link"`
	Description string `yaml:"description" json:"description" jsonschema:"default=Latest releases from followed Bandcamp artists,description=Channel description"`
}

// FetchConfig holds settings for artist page requests
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Timeout for a single artist page request"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent sent with artist page requests"`
}

// ServerConfig holds settings of the optional feed server
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	Refresh time.Duration `yaml:"refresh" json:"refresh,omitempty" jsonschema:"description=Feed regeneration interval while serving, disabled if not set"`
}

// Default returns configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Registry.Path == "" {
		cfg.Registry.Path = defaultRegistryPath
	}

	if cfg.Feed.Path == "" {
		cfg.Feed.Path = defaultFeedPath
	}
	if cfg.Feed.Title == "" {
		cfg.Feed.Title = defaultFeedTitle
	}
	if cfg.Feed.Link == "" {
		cfg.Feed.Link = defaultFeedLink
	}
	if cfg.Feed.Description == "" {
		cfg.Feed.Description = defaultFeedDescription
	}

	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = defaultFetchTimeout
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = defaultUserAgent
	}

	if cfg.Server.Listen == "" {
		cfg.Server.Listen = defaultListen
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = defaultServerTimeout
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Feed.Link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("feed.link must be an absolute URL, got %q", cfg.Feed.Link)
	}

	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.Refresh != 0 && cfg.Server.Refresh < time.Minute {
		return fmt.Errorf("server refresh must be at least 1 minute")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeedPath returns location of the generated feed file
func (c *Config) GetFeedPath() string {
	return c.Feed.Path
}
