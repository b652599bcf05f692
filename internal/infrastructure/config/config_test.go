package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err, "a missing config file is not an error")

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 50.0, cfg.Engine.Thresholds.Health)
	assert.Equal(t, 40.0, cfg.Engine.Thresholds.Wealth)
	assert.Equal(t, 50.0, cfg.Engine.Thresholds.Career)
	assert.Equal(t, 40.0, cfg.Engine.Thresholds.Relationship)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: staging
engine:
  thresholds:
    wealth: 55
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 55.0, cfg.Engine.Thresholds.Wealth)
	assert.Equal(t, 50.0, cfg.Engine.Thresholds.Health, "unset keys keep defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BAZI_ENVIRONMENT", "production")
	t.Setenv("BAZI_ENGINE_THRESHOLDS_HEALTH", "65")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 65.0, cfg.Engine.Thresholds.Health)
}
