// Package config loads service configuration from the environment and the
// optional YAML tie-break policy file.
package config

import (
	"fmt"
	"os"

	"github.com/paydoc/payfix/internal/header"
	"gopkg.in/yaml.v3"
)

// LoadPolicy reads a tie-break policy from a YAML file. An empty path
// yields the built-in defaults.
func LoadPolicy(path string) (header.Policy, error) {
	pol := header.DefaultPolicy()
	if path == "" {
		return pol, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pol, fmt.Errorf("read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &pol); err != nil {
		return pol, fmt.Errorf("parse policy file: %w", err)
	}
	if err := pol.Validate(); err != nil {
		return pol, fmt.Errorf("policy file %s: %w", path, err)
	}
	return pol, nil
}
