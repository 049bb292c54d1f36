package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is parsed from the environment at startup and read-only after.
type Config struct {
	Port      string `env:"PORT" envDefault:"3000"`
	RedisAddr string `env:"REDIS_ADDR"`
	Debug     bool   `env:"DEBUG" envDefault:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
