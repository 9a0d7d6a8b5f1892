package config_test

import (
	"testing"
	"time"

	"go-payroll/internal/shared/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "payroll")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "payroll")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")
	t.Setenv("GEMINI_MAX_TOKENS", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, int32(1000), cfg.Gemini.MaxTokens)
	assert.Equal(t, "host=db user=payroll password=s3cret dbname=payroll port=5433 sslmode=disable", cfg.DB.DSN())
	assert.Equal(t, "postgres://payroll:s3cret@db:5433/payroll?sslmode=disable", cfg.DB.URL())
}
