// Package config loads engine configuration: struct defaults, an optional
// YAML file, then BAZI_-prefixed environment overrides, in that order.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`

	Engine EngineConfig `koanf:"engine"`
}

type EngineConfig struct {
	Thresholds ThresholdsConfig `koanf:"thresholds"`
}

// ThresholdsConfig sets the compound severity scores above which each domain
// emits a recommendation.
type ThresholdsConfig struct {
	Health       float64 `koanf:"health"`
	Wealth       float64 `koanf:"wealth"`
	Career       float64 `koanf:"career"`
	Relationship float64 `koanf:"relationship"`
}

// DefaultConfigPath is consulted when no explicit path is given.
const DefaultConfigPath = "configs/config.yaml"

// Load reads configuration from defaults, the YAML file at path (optional;
// empty means DefaultConfigPath), and BAZI_ environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := &Config{
		Version:     "dev",
		Environment: "development",
		LogLevel:    "info",
		Engine: EngineConfig{
			Thresholds: ThresholdsConfig{
				Health:       50,
				Wealth:       40,
				Career:       50,
				Relationship: 40,
			},
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = DefaultConfigPath
	}
	// The config file is optional.
	_ = k.Load(file.Provider(path), yaml.Parser())

	if err := k.Load(env.Provider("BAZI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "BAZI_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
