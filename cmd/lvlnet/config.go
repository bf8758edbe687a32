// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config supplies defaults for the generator and analysis commands.
// Command-line flags always win over file values.
type Config struct {
	Model string  `yaml:"model"`
	Nodes int     `yaml:"nodes"`
	Edges int     `yaml:"edges"`
	Gamma float64 `yaml:"gamma"`
	Seed  int64   `yaml:"seed"`
}

// defaultConfig mirrors the flag defaults so that an absent file and an
// empty file behave identically.
func defaultConfig() Config {
	return Config{
		Model: modelUniform,
		Nodes: 100,
		Edges: 3,
		Gamma: defaultGamma,
	}
}

// loadConfig reads path into a Config. An empty path returns the defaults
// untouched.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
