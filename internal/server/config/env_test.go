package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	cfg := validConfig()
	err := parseEnv(context.Background(), cfg, envconfig.MapLookuper(map[string]string{
		"DATABASE_URL":          "postgres://env",
		"CRYPT_SECRET":          "env-crypt",
		"ACCESS_TOKEN_TTL":      "30m",
		"UPLOAD_URL_TTL":        "2m",
		"STORAGE":               "memory",
		"RATE_LIMIT_PER_MINUTE": "42",
		"LOG_LEVEL":             "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, "env-crypt", cfg.CryptSecret)
	assert.Equal(t, "master", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 2*time.Minute, cfg.UploadURLValidityDuration)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 42, cfg.RateLimitPerMinute)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func Test_parseEnv_BadDuration(t *testing.T) {
	cfg := validConfig()
	err := parseEnv(context.Background(), cfg, envconfig.MapLookuper(map[string]string{
		"ACCESS_TOKEN_TTL": "forever",
	}))
	require.Error(t, err)
}
