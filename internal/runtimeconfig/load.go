package runtimeconfig

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML configuration file over DefaultConfig. Keys absent
// from the file keep their defaults. The result is not validated.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("posts config: read %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("posts config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads YAML configuration from r over DefaultConfig. Unknown keys
// are rejected so typos surface early.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}
