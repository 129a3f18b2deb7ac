package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://billun:secret@db:5432/billun?sslmode=disable")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("DB_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres://billun:secret@db:5432/billun?sslmode=disable", cfg.Database.URL)
	assert.True(t, cfg.Database.Debug)
	assert.Equal(t, "s3cr3t", cfg.Auth.SecretKey)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}
