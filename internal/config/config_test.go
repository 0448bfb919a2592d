package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
input_dir: /data/output_fx
entrypoint_dir: /data/entrypoint_fx
broker: saxo_bank
days_to_collect: 3
dedup:
  overlap_key: direction+pair
  drop_singletons: true
  strategy: greedy_global
`
	cfg, err := Load(writeTempFile(t, yaml))
	require.NoError(t, err)

	assert.Equal(t, "/data/output_fx", cfg.InputDir)
	assert.Equal(t, "saxo_bank", cfg.Broker)
	assert.Equal(t, 3, cfg.DaysToCollect)
	assert.Equal(t, "direction+pair", cfg.Dedup.OverlapKey)
	assert.True(t, cfg.Dedup.DropSingletons)
	assert.Equal(t, "greedy_global", cfg.Dedup.Strategy)
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_FX_DB_PASSWORD", "secret123")

	yaml := `
database:
  enabled: true
  host: localhost
  name: fx
  user: fx
  password: ${TEST_FX_DB_PASSWORD}
`
	cfg, err := Load(writeTempFile(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "secret123", cfg.Database.Password)
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(writeTempFile(t, "broker: fxtf\n"))
	require.NoError(t, err)

	assert.Equal(t, "fxtf", cfg.Broker)
	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Equal(t, DefaultDaysToCollect, cfg.DaysToCollect)
	assert.Equal(t, DefaultMaxCandidates, cfg.MaxCandidates)
	assert.Equal(t, DefaultOverlapKey, cfg.Dedup.OverlapKey)
	assert.Equal(t, DefaultStrategy, cfg.Dedup.Strategy)
	assert.Equal(t, DefaultDBPort, cfg.Database.Port)
	assert.Equal(t, DefaultDBSSLMode, cfg.Database.SSLMode)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("unknown broker", func(t *testing.T) {
		cfg := base()
		cfg.Broker = "oanda"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad overlap key", func(t *testing.T) {
		cfg := base()
		cfg.Dedup.OverlapKey = "pair"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad strategy", func(t *testing.T) {
		cfg := base()
		cfg.Dedup.Strategy = "random"
		assert.Error(t, cfg.Validate())
	})

	t.Run("days_to_collect below one", func(t *testing.T) {
		cfg := base()
		cfg.DaysToCollect = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("disabled database needs no credentials", func(t *testing.T) {
		cfg := base()
		cfg.Database.Enabled = false
		assert.NoError(t, cfg.Validate())
	})

	t.Run("enabled database requires credentials", func(t *testing.T) {
		cfg := base()
		cfg.Database.Enabled = true
		assert.Error(t, cfg.Validate())

		cfg.Database.Host = "localhost"
		cfg.Database.Name = "fx"
		cfg.Database.User = "fx"
		cfg.Database.Password = "pw"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("min_conns above max_conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.Enabled = true
		cfg.Database.Host = "localhost"
		cfg.Database.Name = "fx"
		cfg.Database.User = "fx"
		cfg.Database.Password = "pw"
		cfg.Database.MinConns = 10
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
