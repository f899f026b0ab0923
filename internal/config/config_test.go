package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/crm-comms/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: crm
  password: secret
  dbname: crm
redis:
  host: localhost
  port: 6379
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "en", cfg.Templates.DefaultLocale)
	assert.Equal(t, 5*time.Minute, cfg.Cooldown.Window())
	assert.Equal(t, "redis", cfg.Cooldown.Backend)
	assert.True(t, cfg.Outbox.RequiresQA("email"))
	assert.False(t, cfg.Outbox.RequiresQA("sms"))
	assert.Contains(t, cfg.OptOut.StopKeywords, "STOP")
	assert.Contains(t, cfg.OptOut.StartKeywords, "START")
	assert.Equal(t, 30, cfg.Gateways.SMS.Timeout)
	assert.Equal(t, uint32(5), cfg.Gateways.Email.CircuitBreaker.ConsecutiveFails)
	assert.Equal(t, 50, cfg.Reminders.BatchSize)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
outbox:
  qa_required:
    sms: true
    email: false
cooldown:
  backend: memory
  window_seconds: 10
templates:
  default_locale: fr
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Outbox.RequiresQA("sms"))
	assert.False(t, cfg.Outbox.RequiresQA("email"))
	assert.Equal(t, "memory", cfg.Cooldown.Backend)
	assert.Equal(t, 10*time.Second, cfg.Cooldown.Window())
	assert.Equal(t, "fr", cfg.Templates.DefaultLocale)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "8080"
`)
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "crm", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=crm sslmode=disable", d.GetDSN())
	assert.Equal(t, "postgres://u:p@db:5432/crm?sslmode=disable", d.GetURL())
}
