// SPDX-License-Identifier: MIT

package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed config_schema.json
var schemaBytes []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
		if schemaErr != nil {
			schemaErr = fmt.Errorf("config: compile embedded schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// ValidateSchema checks a YAML document against the embedded JSON schema.
// Every violation is listed in the returned ErrInvalidConfig.
func ValidateSchema(doc []byte) error {
	s, err := loadSchema()
	if err != nil {
		return err
	}

	var data interface{}
	if err := yaml.Unmarshal(doc, &data); err != nil {
		return fmt.Errorf("%w: parse YAML: %v", ErrInvalidConfig, err)
	}
	if data == nil {
		return nil // empty document
	}

	result, err := s.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("%w: schema validation: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" || field == "" {
			field = desc.Context().String()
		}
		fmt.Fprintf(&b, "\n  - field '%s': %s", field, desc.Description())
	}
	return fmt.Errorf("%w: schema violations:%s", ErrInvalidConfig, b.String())
}
