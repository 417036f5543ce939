package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validTOML = `
[server]
http_port = 9090
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 10
cors_allowed_origins = ["https://club.example.com"]

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "club-test"
path = "/metrics"

[notification]
timeout = 3
email_enabled = true
smtp_host = "smtp.example.com"
smtp_port = 465
smtp_username = "bot"
from = "bot@club.example.com"
to = "club@example.com"
`

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.toml", validTOML)
		t.Setenv("SMTP_PASSWORD", "secret")

		cfg, err := LoadWithEnvFile(path, "")
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, []string{"https://club.example.com"}, cfg.Server.CORSAllowedOrigins)
		assert.Equal(t, "debug", cfg.Logs.Level)
		assert.Equal(t, "club-test", cfg.Metrics.ServiceName)
		assert.True(t, cfg.Notification.EmailEnabled)
		assert.Equal(t, 465, cfg.Notification.SMTPPort)
		assert.Equal(t, "secret", cfg.Notification.SMTPPassword)
		assert.Equal(t, 3*time.Second, cfg.Notification.NotifyTimeout())
	})

	t.Run("defaults for omitted sections", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.toml", "[server]\nhttp_port = 8081\n")

		cfg, err := LoadWithEnvFile(path, "")
		require.NoError(t, err)

		assert.Equal(t, 8081, cfg.Server.HTTPPort)
		assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "info", cfg.Logs.Level)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.False(t, cfg.Notification.EmailEnabled)
		assert.Equal(t, 10*time.Second, cfg.Notification.NotifyTimeout())
	})

	t.Run("secrets from env file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.toml", validTOML)
		envFile := writeFile(t, dir, ".env", "SMTP_PASSWORD=from-dotenv\nNOTIFICATION_WEBHOOK_URL=https://hooks.example.com/x\n")
		// godotenv не перезаписывает существующие переменные
		t.Setenv("SMTP_PASSWORD", "")
		t.Setenv("NOTIFICATION_WEBHOOK_URL", "")
		require.NoError(t, os.Unsetenv("SMTP_PASSWORD"))
		require.NoError(t, os.Unsetenv("NOTIFICATION_WEBHOOK_URL"))

		cfg, err := LoadWithEnvFile(path, envFile)
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.Notification.SMTPPassword)
		assert.Equal(t, "https://hooks.example.com/x", cfg.Notification.WebhookURL)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.toml", validTOML)

		_, err := LoadWithEnvFile(path, filepath.Join(dir, "absent.env"))
		assert.NoError(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "absent.toml"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode config file")
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "config.toml", "[server\nhttp_port = ")

		_, err := LoadWithEnvFile(path, "")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "port zero", mutate: func(c *Config) { c.Server.HTTPPort = 0 }, wantErr: "server.http_port"},
		{name: "port too large", mutate: func(c *Config) { c.Server.HTTPPort = 70000 }, wantErr: "server.http_port"},
		{name: "read timeout", mutate: func(c *Config) { c.Server.ReadTimeout = 0 }, wantErr: "server timeouts"},
		{name: "shutdown timeout", mutate: func(c *Config) { c.Server.ShutdownTimeout = -1 }, wantErr: "server.shutdown_timeout"},
		{name: "log level", mutate: func(c *Config) { c.Logs.Level = "verbose" }, wantErr: "logs.level"},
		{name: "metrics path", mutate: func(c *Config) { c.Metrics.Path = "" }, wantErr: "metrics.path"},
		{name: "notification timeout", mutate: func(c *Config) { c.Notification.Timeout = 0 }, wantErr: "notification.timeout"},
		{name: "smtp host", mutate: func(c *Config) {
			c.Notification.EmailEnabled = true
			c.Notification.From = "a@b.c"
			c.Notification.To = "c@d.e"
		}, wantErr: "notification.smtp_host"},
		{name: "smtp recipients", mutate: func(c *Config) {
			c.Notification.EmailEnabled = true
			c.Notification.SMTPHost = "smtp.example.com"
		}, wantErr: "notification.from"},
	}

	assert.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
