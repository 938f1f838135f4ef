package types

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Courier identifies a carrier. Identity is by Code.
type Courier struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Product names the specific service or number format within a courier,
// e.g. "UPS Ground".
type Product struct {
	Name string `json:"name"`
}

// SerialNumber is the ordered symbol sequence extracted from a tracking
// number body, fed to check-digit arithmetic. Order is significant.
type SerialNumber []rune

// String returns the symbols joined back into a single string.
func (s SerialNumber) String() string { return string(s) }

// MarshalJSON renders the sequence as its joined string form rather than an
// array of code points.
func (s SerialNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// Info is an open string-keyed mapping of descriptive metadata attached to a
// matched value (country, URL, description, ...).
type Info map[string]any

// ValidationError tags a failed rule with a human-readable message. Kind is
// "checksum" or the name of a required additional-information key.
type ValidationError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// RemoveWhitespace drops every whitespace rune from value. Tracking numbers
// are often typed with spaces between digit groups.
func RemoveWhitespace(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}
