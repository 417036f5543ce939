package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ClubBookingService/pkg/logger"
)

// DefaultEnvFile файл с секретами, загружается если существует
const DefaultEnvFile = ".env"

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Notification NotificationConfig `toml:"notification"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort           int      `toml:"http_port"`
	ReadTimeout        int      `toml:"read_timeout"`
	WriteTimeout       int      `toml:"write_timeout"`
	IdleTimeout        int      `toml:"idle_timeout"`
	ShutdownTimeout    int      `toml:"shutdown_timeout"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// NotificationConfig каналы уведомлений о новых бронированиях
type NotificationConfig struct {
	Timeout int `toml:"timeout"` // секунды на одно уведомление

	EmailEnabled bool   `toml:"email_enabled"`
	SMTPHost     string `toml:"smtp_host"`
	SMTPPort     int    `toml:"smtp_port"`
	SMTPUsername string `toml:"smtp_username"`
	SMTPPassword string `toml:"-"` // только из окружения SMTP_PASSWORD
	From         string `toml:"from"`
	To           string `toml:"to"`

	WebhookURL string `toml:"webhook_url"`
}

// Load читает конфигурацию из TOML файла и .env в текущей директории
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, DefaultEnvFile)
}

// LoadWithEnvFile читает конфигурацию из TOML файла, затем секреты из envFile и окружения.
// Отсутствие envFile не является ошибкой.
func LoadWithEnvFile(path, envFile string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:           8080,
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			ShutdownTimeout:    15,
			CORSAllowedOrigins: []string{"*"},
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "club-booking-service",
			Path:        "/metrics",
		},
		Notification: NotificationConfig{
			Timeout:  10,
			SMTPPort: 587,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.Notification.SMTPPassword = v
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		c.Notification.SMTPUsername = v
	}
	if v := os.Getenv("NOTIFICATION_WEBHOOK_URL"); v != "" {
		c.Notification.WebhookURL = v
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be between 1 and 65535, got %d", c.Server.HTTPPort)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}

	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		return fmt.Errorf("logs.level: %w", err)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}

	if c.Notification.Timeout <= 0 {
		return fmt.Errorf("notification.timeout must be positive")
	}
	if c.Notification.EmailEnabled {
		if c.Notification.SMTPHost == "" {
			return fmt.Errorf("notification.smtp_host is required when email is enabled")
		}
		if c.Notification.SMTPPort <= 0 || c.Notification.SMTPPort > 65535 {
			return fmt.Errorf("notification.smtp_port must be between 1 and 65535, got %d", c.Notification.SMTPPort)
		}
		if c.Notification.From == "" || c.Notification.To == "" {
			return fmt.Errorf("notification.from and notification.to are required when email is enabled")
		}
	}

	return nil
}

// NotifyTimeout таймаут отправки одного уведомления
func (c *NotificationConfig) NotifyTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
