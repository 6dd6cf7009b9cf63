// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path over Default(), after checking it
// against the embedded schema. Unknown keys are rejected. Cross-field rules
// are left to Validate, which callers run once every layer is applied.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse is Load for an in-memory document.
func Parse(doc []byte) (Config, error) {
	if err := ValidateSchema(doc); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := decodeStrict(doc, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeStrict(doc []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(doc))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: YAML: %v", ErrInvalidConfig, err)
	}
	return nil
}
