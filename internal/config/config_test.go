package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "parseTime=true")
	assert.Equal(t, "UTC", cfg.Dating.Timezone)
	assert.Equal(t, 10, cfg.Dating.DefaultCandidateLimit)
	assert.Equal(t, 50, cfg.Dating.MaxCandidateLimit)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "pg.internal")
	t.Setenv("DATING_TIMEZONE", "Africa/Nairobi")
	t.Setenv("HTTP_ENABLED", "no")
	t.Setenv("REDIS_DB", "3")

	cfg := New()

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "host=pg.internal")
	assert.Equal(t, "Africa/Nairobi", cfg.Dating.Timezone)
	assert.False(t, cfg.HTTP.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
log:
  level: debug
db:
  driver: sqlite
  name: ${DATING_TEST_DB}
dating:
  max_candidate_limit: 25
grpc:
  port: "6000"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("DATING_TEST_DB", "campus")
	t.Setenv("GRPC_PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "campus.db", cfg.DB.DSN)
	assert.Equal(t, 25, cfg.Dating.MaxCandidateLimit)
	// env wins over the file
	assert.Equal(t, "7000", cfg.GRPC.Port)
	// untouched values keep their defaults
	assert.Equal(t, 10, cfg.Dating.DefaultCandidateLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
