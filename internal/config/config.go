package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Admin    AdminConfig

	LogLevel    string `env:"LOG_LEVEL,default=info"`
	SwaggerHost string `env:"SWAGGER_HOST"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `env:"SERVER_PORT,default=8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT,default=15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT,default=15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT,default=60s"`
}

// DatabaseConfig selects and tunes the relational store.
// URL accepts postgres://, mysql:// (or a go-sql-driver DSN) and sqlite:// forms.
type DatabaseConfig struct {
	URL   string `env:"DATABASE_URL,default=sqlite://billun.db"`
	Debug bool   `env:"DB_DEBUG,default=false"`
	Reset bool   `env:"RESET_DB,default=false"`
}

// AuthConfig holds the token signing secret.
type AuthConfig struct {
	SecretKey string `env:"SECRET_KEY,default=billun_secret_key"`
}

// RedisConfig configures the optional cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,default=0"`
}

// SMTPConfig configures outbound mail.
type SMTPConfig struct {
	Server   string `env:"SMTP_SERVER,default=smtp.example.com"`
	Port     int    `env:"SMTP_PORT,default=587"`
	User     string `env:"SMTP_USER,default=noreply@example.com"`
	Password string `env:"SMTP_PASSWORD,default=password"`
}

// AdminConfig holds the bootstrap administrator credentials used by cmd/createadmin.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,default=admin@billun.com"`
	Password string `env:"ADMIN_PASSWORD,default=admin123"`
}

// Load builds Config from environment with insecure development defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
