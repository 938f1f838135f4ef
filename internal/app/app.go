package app

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tracknum/internal/catalog"
	"tracknum/internal/domain"
	"tracknum/internal/store"
)

// App bundles the loaded catalog and the logger for the commands.
type App struct {
	Catalog *catalog.Catalog
	Log     zerolog.Logger
}

// New loads courier specs per cfg and builds the definition catalog.
func New(cfg Config) (*App, error) {
	log := NewLogger(cfg.LogFormat, cfg.LogLevel)
	loader := store.NewLoader(log)

	var specs []domain.CourierSpec
	var err error
	if cfg.DataDir != "" {
		specs, err = loader.LoadDir(cfg.DataDir)
	} else {
		specs, err = loader.Embedded()
	}
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(specs)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("couriers", len(specs)).
		Int("definitions", len(cat.Definitions())).
		Msg("catalog ready")
	return &App{Catalog: cat, Log: log}, nil
}

// NewLogger configures a zerolog logger using the provided format and level.
func NewLogger(format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if strings.ToLower(strings.TrimSpace(format)) != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger().Level(lvl)
}
