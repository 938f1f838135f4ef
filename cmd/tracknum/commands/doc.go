// Package commands defines the tracknum CLI: thin wrappers that load the
// courier catalog and print classification results. All matching logic
// lives in internal/definition and internal/catalog.
package commands
