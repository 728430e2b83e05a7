package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/tempmon/internal/config"
	"codeberg.org/mutker/tempmon/internal/errors"
	"codeberg.org/mutker/tempmon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tempmon.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
interval = 5
cache_ttl = 2500
debug = true
gpu = false

[thresholds.disk]
warning = 45
critical = 55
`)
	t.Setenv("TEMPMON_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Interval)
	assert.Equal(t, 2500, cfg.CacheTTL)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Hardware, "Expected default Hardware true")
	assert.False(t, cfg.GPU)

	table := cfg.ThresholdTable()
	assert.Equal(t, sensor.Thresholds{Warning: 45, Critical: 55}, table[sensor.TypeDisk])
	// Types not overridden keep their defaults.
	assert.Equal(t, sensor.Thresholds{Warning: 80, Critical: 85}, table[sensor.TypeCPUPackage])
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TEMPMON_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultInterval, cfg.Interval)
	assert.Equal(t, config.DefaultCacheTTL, cfg.CacheTTL)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.Hardware)
	assert.True(t, cfg.Disks)
	assert.True(t, cfg.GPU)
}

func TestLoadInvalidFormat(t *testing.T) {
	path := writeConfig(t, "This is not a valid TOML file\n")
	t.Setenv("TEMPMON_CONFIG", path)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrReadConfig))
}

func TestLoadInvalidTTL(t *testing.T) {
	path := writeConfig(t, "cache_ttl = 0\n")
	t.Setenv("TEMPMON_CONFIG", path)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInvalidTTL))
}

func TestTTL(t *testing.T) {
	cfg := &config.Config{CacheTTL: 1500}
	assert.Equal(t, "1.5s", cfg.TTL().String())
}
