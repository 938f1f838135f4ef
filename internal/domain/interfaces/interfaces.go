package interfaces

import domaintypes "tracknum/internal/domain/types"

// ChecksumValidator verifies a claimed check digit against a serial number.
type ChecksumValidator interface {
	// CheckDigit computes the expected check digit in its rendered string
	// form. It errors when the serial cannot be interpreted by the variant
	// (e.g. a non-digit symbol reaching a numeric algorithm).
	CheckDigit(serial domaintypes.SerialNumber) (string, error)

	// Passes reports whether checkDigit matches the computed digit. A check
	// digit that does not parse under the variant's representation fails the
	// check; it is never an error.
	Passes(serial domaintypes.SerialNumber, checkDigit string) bool
}

// SerialNumberParser turns a raw matched substring, already stripped of
// whitespace, into an ordered symbol sequence.
type SerialNumberParser interface {
	Parse(raw string) domaintypes.SerialNumber
}

// ValueMatcher tests an extracted value against one declarative criterion.
type ValueMatcher interface {
	Matches(value string) bool
}
