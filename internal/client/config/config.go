package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the slugmart CLI.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults points the CLI at a locally running server.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:4000/graphql"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file at path (if any), then
// the environment.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	return loadConfig(ctx, path, envconfig.OsLookuper())
}

func loadConfig(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, lookuper); err != nil {
		return nil, err
	}
	return cfg, nil
}
