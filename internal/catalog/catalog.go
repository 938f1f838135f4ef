package catalog

import (
	"fmt"
	"strings"

	"tracknum/internal/definition"
	"tracknum/internal/domain"
)

// Catalog is the full set of definitions, in courier-file order.
type Catalog struct {
	defs []*definition.Definition
}

// New builds every definition declared by the given courier specs. A single
// malformed spec fails the whole catalog: a bad definition must never
// silently pass or drop user input.
func New(specs []domain.CourierSpec) (*Catalog, error) {
	var defs []*definition.Definition
	for _, cs := range specs {
		courier := cs.Courier()
		for _, ts := range cs.TrackingNumbers {
			def, err := definition.FromSpec(courier, ts)
			if err != nil {
				return nil, fmt.Errorf("courier %q: %w", cs.CourierCode, err)
			}
			defs = append(defs, def)
		}
	}
	return &Catalog{defs: defs}, nil
}

// Find returns the first definition match that also validates, or nil when
// no definition both recognises and accepts the number.
func (c *Catalog) Find(number string) *domain.TrackingNumber {
	for _, def := range c.defs {
		if tn := def.Test(number); tn != nil && tn.Valid() {
			return tn
		}
	}
	return nil
}

// Possible returns every definition match regardless of validity, useful
// when a number is mistyped or its format is ambiguous.
func (c *Catalog) Possible(number string) []*domain.TrackingNumber {
	var matches []*domain.TrackingNumber
	for _, def := range c.defs {
		if tn := def.Test(number); tn != nil {
			matches = append(matches, tn)
		}
	}
	return matches
}

// Definition returns the definition whose product name equals name,
// case-insensitively, or nil.
func (c *Catalog) Definition(productName string) *definition.Definition {
	for _, def := range c.defs {
		if strings.EqualFold(def.Product().Name, productName) {
			return def
		}
	}
	return nil
}

// Definitions returns all definitions in load order.
func (c *Catalog) Definitions() []*definition.Definition {
	return append([]*definition.Definition(nil), c.defs...)
}
