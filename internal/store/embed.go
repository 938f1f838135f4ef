package store

import (
	"embed"
	"fmt"
	"io/fs"

	"tracknum/internal/domain"
)

//go:embed data/couriers
var courierFS embed.FS

const embeddedDir = "data/couriers"

// Embedded returns the courier specs bundled with the binary.
func (l *Loader) Embedded() ([]domain.CourierSpec, error) {
	entries, err := fs.ReadDir(courierFS, embeddedDir)
	if err != nil {
		return nil, fmt.Errorf("read embedded courier specs: %w", err)
	}

	var specs []domain.CourierSpec
	for _, entry := range entries {
		data, err := fs.ReadFile(courierFS, embeddedDir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read embedded courier spec: %w", err)
		}
		cs, err := l.decode(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		specs = append(specs, cs)
	}
	return specs, nil
}
