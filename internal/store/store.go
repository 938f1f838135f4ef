package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"tracknum/internal/domain"
)

// Loader reads and validates courier spec files.
type Loader struct {
	log      zerolog.Logger
	validate *validator.Validate
}

// NewLoader returns a loader logging through log.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{
		log:      log,
		validate: validator.New(),
	}
}

// LoadDir reads every courier spec file in dir, in lexical filename order.
// Files without a .json/.yaml/.yml extension are skipped.
func (l *Loader) LoadDir(dir string) ([]domain.CourierSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read courier spec dir: %w", err)
	}

	var specs []domain.CourierSpec
	for _, entry := range entries {
		if entry.IsDir() || !specFile(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read courier spec: %w", err)
		}
		cs, err := l.decode(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		specs = append(specs, cs)
	}
	return specs, nil
}

// decode parses and schema-validates one courier spec file.
func (l *Loader) decode(name string, data []byte) (domain.CourierSpec, error) {
	var cs domain.CourierSpec
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		err = json.Unmarshal(data, &cs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cs)
	}
	if err != nil {
		return domain.CourierSpec{}, fmt.Errorf("parse courier spec %s: %w", name, err)
	}
	if err := l.validate.Struct(cs); err != nil {
		return domain.CourierSpec{}, fmt.Errorf("invalid courier spec %s: %w", name, err)
	}

	l.log.Debug().
		Str("file", name).
		Str("courier", cs.CourierCode).
		Int("formats", len(cs.TrackingNumbers)).
		Msg("loaded courier spec")
	return cs, nil
}

func specFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
