package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the process reads from its environment.
// DATABASE_URL and DATABASE_NAME may legitimately be empty: the API keeps
// serving and reports the missing storage through /test.
type Config struct {
	Port         string `env:"PORT" envDefault:"8000"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseName string `env:"DATABASE_NAME"`
}

func Load() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}
