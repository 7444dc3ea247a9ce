package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
  allowed_origins:
    - http://localhost:4000
reconcile:
  timezone: America/Chicago
  scorer: levenshtein
extraction:
  base_url: https://ocr.example.com
  api_key: ${TEST_EXTRACTION_KEY}
storage:
  database_path: runs.db
observability:
  logging:
    level: debug
    format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	os.Setenv("TEST_EXTRACTION_KEY", "sekrit")
	defer os.Unsetenv("TEST_EXTRACTION_KEY")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:4000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "America/Chicago", cfg.Reconcile.Timezone)
	assert.Equal(t, "levenshtein", cfg.Reconcile.Scorer)
	assert.Equal(t, "sekrit", cfg.Extraction.APIKey, "env vars expand inside the file")
	assert.Equal(t, "runs.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extraction:\n  base_url: https://ocr.example.com\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "UTC", cfg.Reconcile.Timezone)
	assert.Equal(t, "overlap", cfg.Reconcile.Scorer)
	assert.Equal(t, "reconcile_runs.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("RECONCILE_TIMEZONE", "America/Chicago")
	os.Setenv("RECONCILE_DB_PATH", "test.db")
	os.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	defer func() {
		os.Unsetenv("RECONCILE_TIMEZONE")
		os.Unsetenv("RECONCILE_DB_PATH")
		os.Unsetenv("ALLOWED_ORIGINS")
	}()

	cfg := LoadFromEnv()
	assert.Equal(t, "America/Chicago", cfg.Reconcile.Timezone)
	assert.Equal(t, "test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadOrEnvWithPath_FallsBack(t *testing.T) {
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NotNil(t, cfg)
	assert.Equal(t, "UTC", cfg.Reconcile.Timezone)
}
