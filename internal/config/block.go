package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const blockSchemaURL = "https://github.com/jeduden/denojsonlint/config.schema.json"

const blockSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "rules": {
      "type": ["object", "null"],
      "additionalProperties": { "enum": ["off", "warn", "error"] }
    }
  },
  "additionalProperties": false
}`

var compiledBlockSchema = jsonschema.MustCompileString(blockSchemaURL, blockSchema)

// ParseBlock decodes the linter's configuration block embedded in a
// document. raw must be plain JSON. An empty or null block yields nil.
func ParseBlock(raw []byte) (*Config, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding config block: %w", err)
	}
	if err := compiledBlockSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid config block: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config block: %w", err)
	}
	return &cfg, nil
}
