package config

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/c360/graphexport/errors"
)

// configSchema is the JSON schema the validated config must satisfy. It
// covers the shape constraints that are awkward to express imperatively:
// the format enum, the prefix table's value types, and the page-name list.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["base_url", "format"],
  "properties": {
    "base_url": {"type": "string", "minLength": 1},
    "format": {
      "type": "string",
      "enum": ["turtle", "ntriples", "nquads", "trig", "rdfxml", "jsonld"]
    },
    "prefixes": {
      "type": "object",
      "additionalProperties": {"type": "string", "minLength": 1}
    },
    "override_attribute": {"type": "string", "minLength": 1},
    "additional_pages": {
      "type": "array",
      "items": {"type": "string"}
    },
    "queries": {
      "type": "object",
      "properties": {
        "classes": {"type": "string"},
        "properties": {"type": "string"},
        "instances": {"type": "string"},
        "all_pages": {"type": "string"}
      }
    }
  }
}`

// validateSchema cross-checks the config against configSchema. The config is
// marshaled to JSON first; the yaml and json tags agree, so the document the
// schema sees matches the file shape.
func (c *Config) validateSchema() error {
	doc, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "config", "validateSchema", "marshaling config")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return errors.Wrap(err, "config", "validateSchema", "running validation")
	}

	if !result.Valid() {
		msg := "config schema validation failed:"
		for _, desc := range result.Errors() {
			msg += fmt.Sprintf("\n  - %s: %s", desc.Field(), desc.Description())
		}
		return fmt.Errorf("%w: %s", errors.ErrInvalidConfig, msg)
	}

	return nil
}
