package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// EnvConfig mirrors the variable names used by existing deployments.
// Unset variables leave the corresponding Config field alone.
type EnvConfig struct {
	EndpointAddrHTTP            string        `env:"HTTP_ADDR"`
	EndpointAddrGRPC            string        `env:"GRPC_ADDR"`
	Storage                     string        `env:"STORAGE"`
	DatabaseDSN                 string        `env:"DATABASE_URL"`
	SecretKey                   string        `env:"MASTER_SECRET"`
	CryptSecret                 string        `env:"CRYPT_SECRET"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_TTL"`
	S3RootUser                  string        `env:"AWS_ACCESS_KEY_ID"`
	S3RootPassword              string        `env:"AWS_SECRET_ACCESS_KEY"`
	S3Bucket                    string        `env:"AWS_S3_BUCKET"`
	S3Region                    string        `env:"AWS_REGION"`
	S3BaseEndpoint              string        `env:"AWS_ENDPOINT_URL_S3"`
	UploadURLValidityDuration   time.Duration `env:"UPLOAD_URL_TTL"`
	AllowedOrigins              []string      `env:"CORS_ALLOWED_ORIGINS"`
	RateLimitPerMinute          int           `env:"RATE_LIMIT_PER_MINUTE"`
	OTLPEndpoint                string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	LogLevel                    string        `env:"LOG_LEVEL"`
}

func parseEnv(ctx context.Context, config *Config, lookuper envconfig.Lookuper) error {
	var c EnvConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &c, Lookuper: lookuper}); err != nil {
		return err
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.Storage, c.Storage)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.CryptSecret, c.CryptSecret)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.OTLPEndpoint, c.OTLPEndpoint)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration
	}
	if c.UploadURLValidityDuration > 0 {
		config.UploadURLValidityDuration = c.UploadURLValidityDuration
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.RateLimitPerMinute > 0 {
		config.RateLimitPerMinute = c.RateLimitPerMinute
	}
	return nil
}
