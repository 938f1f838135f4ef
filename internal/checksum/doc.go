// Package checksum implements the check-digit strategies used by courier
// tracking-number formats.
//
// Each strategy computes a deterministic check digit from a serial number
// and verifies it against the digit claimed by the tracking number itself.
// Strategies are resolved by name from a declarative checksum spec via
// FromSpec; an unknown name is a configuration error, surfaced at
// construction so a typo can never silently accept unvalidated numbers.
package checksum
