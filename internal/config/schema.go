package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// manifestSchema is the JSON Schema every manifest must satisfy. It
// complements structural validation with shape checks that run before
// any field is interpreted.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["project", "toolchain"],
  "properties": {
    "project": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "version": {"type": "string"}
      }
    },
    "toolchain": {
      "type": "object",
      "required": ["channel", "target"],
      "properties": {
        "channel": {"type": "string", "minLength": 1},
        "version": {"type": "string"},
        "profile": {"type": "string"},
        "target": {"type": "string", "minLength": 1}
      }
    },
    "build": {
      "type": "object",
      "properties": {
        "source": {"type": "string"},
        "args": {"type": "object", "additionalProperties": {"type": "string"}},
        "env": {"type": "object", "additionalProperties": {"type": "string"}},
        "target_env": {"type": "string"}
      }
    },
    "devshell": {
      "type": "object",
      "properties": {
        "libraries": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["name"],
            "properties": {
              "name": {"type": "string", "minLength": 1},
              "when": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("crossforge-manifest.schema.json", manifestSchema)

// ValidateSchema checks raw manifest YAML against the manifest schema.
// Use this for pre-flight validation of untrusted manifests.
func ValidateSchema(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Round-trip through JSON so the document uses the value types the
	// schema validator expects.
	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to normalize manifest: %w", err)
	}
	var normalized any
	if err := json.NewDecoder(bytes.NewReader(buf)).Decode(&normalized); err != nil {
		return fmt.Errorf("failed to normalize manifest: %w", err)
	}

	if err := compiledSchema.Validate(normalized); err != nil {
		return fmt.Errorf("manifest schema validation failed: %w", err)
	}
	return nil
}
