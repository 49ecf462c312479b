// Package config loads application configuration from the environment.
// Command flags may override individual values after loading.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/DylanBreuer/GenshinTools/internal/errors"
)

// Config holds every setting the commands need
type Config struct {
	// RedisAddr is the address of the Redis instance backing the stores
	RedisAddr string `env:"GENSHIN_TOOLS_REDIS_ADDR" envDefault:"localhost:6379"`

	// BaseURL is the root of the upstream game data API
	BaseURL string `env:"GENSHIN_TOOLS_BASE_URL" envDefault:"https://genshin.jmp.blue"`

	// Language is an optional lang query parameter sent with every fetch
	Language string `env:"GENSHIN_TOOLS_LANG"`

	// HTTPTimeout bounds each upstream request
	HTTPTimeout time.Duration `env:"GENSHIN_TOOLS_HTTP_TIMEOUT" envDefault:"30s"`

	// VocabularyPath optionally points at a YAML file overriding the
	// built-in source vocabulary (boss table and region set)
	VocabularyPath string `env:"GENSHIN_TOOLS_VOCABULARY"`
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	errors.ValidateRequired("base_url", c.BaseURL, vb)
	if c.HTTPTimeout <= 0 {
		vb.InvalidField("http_timeout", "must be positive")
	}
	return vb.Build()
}
