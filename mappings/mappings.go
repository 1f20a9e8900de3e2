// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package mappings

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/toolhive-errtranslate/translator"
)

// rootKey is the document field holding the mapping table.
const rootKey = "errorMappings"

//go:embed schema/mappings.schema.json
var schemaData []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaData)

// Parse reads a YAML or JSON document of the form
//
//	errorMappings:
//	  user not found:
//	    code: 404
//	    message: No such user.
//
// and returns a Config holding its mapping table. Rejections are
// *translator.ConfigError values checked in this order: missing table,
// table that is not an object, empty or malformed table.
func Parse(data []byte) (*translator.Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse mappings document: %w", err)
	}

	root, _ := normalize(doc).(map[string]any)
	raw := root[rootKey]
	if isFalsy(raw) {
		return nil, translator.NewConfigError(translator.ErrKindMappingsRequired)
	}

	switch raw.(type) {
	case map[string]any, []any:
	default:
		return nil, translator.NewConfigError(translator.ErrKindMappingsNotObject)
	}

	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	// The schema has fixed the shape, so this round trip cannot lose data.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode mappings: %w", err)
	}
	var m translator.Mappings
	if err := json.Unmarshal(encoded, &m); err != nil {
		return nil, fmt.Errorf("failed to decode mappings: %w", err)
	}

	return &translator.Config{Mappings: m}, nil
}

// LoadFile parses the mappings document at path. Validation failures are
// returned as "<path>: <message>" wrapping the *translator.ConfigError, so
// compare them with errors.Is against the translator sentinels rather than
// by string.
func LoadFile(path string) (*translator.Config, error) {
	// #nosec G304 -- path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func validateSchema(raw any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return translator.NewConfigError(translator.ErrKindInvalidSchema, err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return translator.NewConfigError(translator.ErrKindInvalidSchema, details...)
}

// normalize converts YAML mappings with non-string keys into
// map[string]any so the document can be validated as JSON.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}

// isFalsy reports whether v counts as an absent mapping table.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case int:
		return t == 0
	case float64:
		return t == 0
	default:
		return false
	}
}
