package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag: "toml",
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/dockyard/config.schema.json"
	schema.Title = "Dockyard Configuration"
	schema.Description = "Configuration schema for dockyard (config.toml)"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
