// Package store loads courier specification files.
//
// Courier specs are declarative JSON (or YAML) documents describing each
// courier's tracking-number formats. The loader decodes them into
// domain.CourierSpec values and schema-validates them up front; a malformed
// file is a configuration error surfaced immediately, never deferred to
// match time. A default set of couriers is embedded in the binary.
package store
