package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries CLI defaults sourced from the environment. Flags override
// every field.
type Config struct {
	Format  string `env:"VARATE_FORMAT" envDefault:"text"`
	Verbose bool   `env:"VARATE_VERBOSE" envDefault:"false"`
	NoColor bool   `env:"NO_COLOR"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
