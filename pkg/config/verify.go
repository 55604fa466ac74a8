package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks the config against the embedded JSON schema: every
// property the schema marks as required must be set, and every configured service URL
// must be absolute.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema struct {
		Defs map[string]struct {
			Required []string `json:"required"`
		} `json:"$defs"`
	}
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var sections map[string]map[string]any
	if err := json.Unmarshal(configData, &sections); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	for section, def := range map[string]string{"permissions": "PermissionsConfig", "metadata": "MetadataConfig",
		"database": "DatabaseConfig", "feeds": "FeedsConfig", "aggregation": "AggregationConfig"} {
		for _, field := range schema.Defs[def].Required {
			if v, ok := sections[section][field]; !ok || v == "" || v == nil {
				return fmt.Errorf("%s.%s is required", section, field)
			}
		}
	}

	return validateURLs(cfg)
}

// validateURLs checks that every non-empty service URL is absolute
func validateURLs(cfg *Config) error {
	for name, raw := range map[string]string{
		"permissions.url":        cfg.Permissions.URL,
		"permissions.groups_url": cfg.Permissions.GroupsURL,
		"metadata.url":           cfg.Metadata.URL,
		"app_exposer.url":        cfg.AppExposer.URL,
		"website.url":            cfg.Website.URL,
		"videos.url":             cfg.Videos.URL,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct. Only fields tagged
// "required" are marked required.
func GenerateSchema() (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	return r.Reflect(&Config{}), nil
}
