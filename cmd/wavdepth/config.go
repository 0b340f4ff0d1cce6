package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const (
	defaultDepth  = 8
	formatYAML    = "yaml"
	formatJSON    = "json"
	defaultFormat = formatYAML
)

// Config holds defaults for flags that were not set on the command line.
type Config struct {
	// Depth is the target bit depth of convert.
	Depth uint16 `yaml:"depth,omitempty"`
	// Suffix is appended to the input name to build the output name.
	// Empty means "_<depth>bit".
	Suffix string `yaml:"suffix,omitempty"`
	// AIFF also exports converted files as AIFF.
	AIFF bool `yaml:"aiff,omitempty"`
	// Strict rejects files ending with an incomplete sample.
	Strict bool `yaml:"strict,omitempty"`
	// Format is the info report format, yaml or json.
	Format string `yaml:"format,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Depth:  defaultDepth,
		Format: defaultFormat,
	}
}

// loadConfig reads a YAML config file. Missing keys keep their defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	switch cfg.Format {
	case formatYAML, formatJSON:
	default:
		return cfg, fmt.Errorf("config %s: unsupported format %q", path, cfg.Format)
	}

	return cfg, nil
}
