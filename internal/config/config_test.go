package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, 10*time.Second, conf.API.ShutdownTimeout)
	assert.Equal(t, StorageMemory, conf.Storage.Driver)
	assert.Equal(t, "info", conf.Log.Level)
	assert.Equal(t, "slots", conf.Postgres.DB)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
api:
  environment: production
  port: "9090"
  allowed_cors_domains:
    - https://admin.example.com
  shutdown_timeout: 3s
gin:
  mode: release
storage:
  driver: postgres
postgres:
  host: db
log:
  level: warn
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", conf.API.Environment)
	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, []string{"https://admin.example.com"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, 3*time.Second, conf.API.ShutdownTimeout)
	assert.Equal(t, "release", conf.Gin.Mode)
	assert.Equal(t, StoragePostgres, conf.Storage.Driver)
	assert.Equal(t, "db", conf.Postgres.Host)
	assert.Equal(t, "5432", conf.Postgres.Port)
	assert.Equal(t, "warn", conf.Log.Level)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "api:\n  port: \"9090\"\n")
	t.Setenv("API_PORT", "7070")
	t.Setenv("STORAGE_DRIVER", "postgres")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", conf.API.Port)
	assert.Equal(t, StoragePostgres, conf.Storage.Driver)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: cassandra\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "cassandra")
}

func TestLoad_RejectsBrokenYAML(t *testing.T) {
	path := writeConfig(t, "api: [unclosed\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWatch_MissingFileIsNoop(t *testing.T) {
	called := false
	err := Watch(filepath.Join(t.TempDir(), "absent.yml"), func(*AppConfig) { called = true })

	assert.NoError(t, err)
	assert.False(t, called)
}

func TestPostgresConfig_DSN(t *testing.T) {
	c := &PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", DB: "slots", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=slots sslmode=disable", c.DSN())
}
