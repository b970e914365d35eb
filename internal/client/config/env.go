package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type EnvConfig struct {
	ServerURL      string        `env:"SLUGMART_SERVER_URL"`
	RequestTimeout time.Duration `env:"SLUGMART_TIMEOUT"`
}

func parseEnv(ctx context.Context, cfg *Config, lookuper envconfig.Lookuper) error {
	var c EnvConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &c, Lookuper: lookuper}); err != nil {
		return err
	}
	if c.ServerURL != "" {
		cfg.ServerURL = c.ServerURL
	}
	if c.RequestTimeout > 0 {
		cfg.RequestTimeout = c.RequestTimeout
	}
	return nil
}
