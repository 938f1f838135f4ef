package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// DataDir is a directory of courier spec files. Empty means the set
	// embedded in the binary.
	DataDir string `env:"TRACKNUM_DATA_DIR"`

	LogLevel  string `env:"TRACKNUM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TRACKNUM_LOG_FORMAT" envDefault:"console"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
