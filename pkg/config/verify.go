package config

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

//go:generate go run ../../cmd/schema -o schema.json

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// schema properties of the config sections must match the struct
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkSections(schema, configMap); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// checkSections ensures every config section is declared in the schema
func checkSections(schema, configMap map[string]any) error {
	defs, ok := schema["$defs"].(map[string]any)
	if !ok {
		return fmt.Errorf("no $defs in schema")
	}
	root, ok := defs["Config"].(map[string]any)
	if !ok {
		return fmt.Errorf("no Config definition in schema")
	}
	props, ok := root["properties"].(map[string]any)
	if !ok {
		return fmt.Errorf("no properties in Config definition")
	}
	for section := range configMap {
		if _, found := props[section]; !found {
			return fmt.Errorf("section %q is not declared", section)
		}
	}
	return nil
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Registry.Path == "" {
		return fmt.Errorf("registry.path is required")
	}
	if cfg.Feed.Path == "" {
		return fmt.Errorf("feed.path is required")
	}
	if cfg.Feed.Title == "" {
		return fmt.Errorf("feed.title is required")
	}
	if cfg.Fetch.Timeout == 0 {
		return fmt.Errorf("fetch.timeout is required")
	}
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
