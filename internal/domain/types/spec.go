package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CourierSpec is the parsed form of one courier's declarative specification
// file, as shipped in the courier data set.
type CourierSpec struct {
	Name            string               `json:"name" yaml:"name" validate:"required"`
	CourierCode     string               `json:"courier_code" yaml:"courier_code" validate:"required"`
	TrackingNumbers []TrackingNumberSpec `json:"tracking_numbers" yaml:"tracking_numbers" validate:"required,min=1,dive"`
}

// Courier returns the courier value the spec describes.
func (c CourierSpec) Courier() Courier {
	return Courier{Code: c.CourierCode, Name: c.Name}
}

// TrackingNumberSpec declares one number format within a courier.
type TrackingNumberSpec struct {
	Name        string           `json:"name" yaml:"name" validate:"required"`
	Regex       RegexSpec        `json:"regex" yaml:"regex" validate:"required"`
	TrackingURL string           `json:"tracking_url" yaml:"tracking_url"`
	Validation  *ValidationSpec  `json:"validation" yaml:"validation" validate:"required"`
	Additional  []AdditionalSpec `json:"additional" yaml:"additional" validate:"dive"`
	TestNumbers *TestNumbersSpec `json:"test_numbers" yaml:"test_numbers"`
}

// RegexSpec is a pattern that may be written as a single string or as a list
// of fragments that concatenate in order.
type RegexSpec string

// UnmarshalJSON accepts both the string and the fragment-list form.
func (r *RegexSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RegexSpec(s)
		return nil
	}
	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("regex must be a string or a list of strings: %w", err)
	}
	*r = RegexSpec(strings.Join(parts, ""))
	return nil
}

// UnmarshalYAML accepts both the string and the fragment-list form.
func (r *RegexSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*r = RegexSpec(s)
		return nil
	case yaml.SequenceNode:
		var parts []string
		if err := value.Decode(&parts); err != nil {
			return err
		}
		*r = RegexSpec(strings.Join(parts, ""))
		return nil
	}
	return fmt.Errorf("regex must be a string or a list of strings")
}

// ValidationSpec is the validation block of a tracking-number spec.
type ValidationSpec struct {
	Checksum           *ChecksumSpec           `json:"checksum" yaml:"checksum"`
	SerialNumberFormat *SerialNumberFormatSpec `json:"serial_number_format" yaml:"serial_number_format"`
	Additional         *AdditionalExistsSpec   `json:"additional" yaml:"additional"`
}

// ChecksumSpec selects a check-digit strategy by name and carries its
// variant-specific parameters. A zero multiplier means "unconfigured".
type ChecksumSpec struct {
	Name            string `json:"name" yaml:"name" validate:"required"`
	OddsMultiplier  int    `json:"odds_multiplier" yaml:"odds_multiplier"`
	EvensMultiplier int    `json:"evens_multiplier" yaml:"evens_multiplier"`
	Weightings      []int  `json:"weightings" yaml:"weightings"`
	Modulo1         int    `json:"modulo1" yaml:"modulo1"`
	Modulo2         int    `json:"modulo2" yaml:"modulo2"`
}

// SerialNumberFormatSpec declares transforms applied to the raw serial
// before check-digit arithmetic.
type SerialNumberFormatSpec struct {
	PrependIf *PrependIfSpec `json:"prepend_if" yaml:"prepend_if"`
}

// PrependIfSpec prepends Content to serials matching the pattern.
type PrependIfSpec struct {
	MatchesRegex string `json:"matches_regex" yaml:"matches_regex" validate:"required"`
	Content      string `json:"content" yaml:"content" validate:"required"`
}

// AdditionalExistsSpec lists extractor names that must have matched for the
// overall result to be valid.
type AdditionalExistsSpec struct {
	Exists []string `json:"exists" yaml:"exists"`
}

// AdditionalSpec binds a capture group to an ordered lookup of matcher
// entries. Each lookup entry carries either "matches" or "matches_regex";
// every other key becomes the Info payload attached on a match.
type AdditionalSpec struct {
	Name           string           `json:"name" yaml:"name" validate:"required"`
	RegexGroupName string           `json:"regex_group_name" yaml:"regex_group_name" validate:"required"`
	Lookup         []map[string]any `json:"lookup" yaml:"lookup" validate:"required,min=1"`
}

// TestNumbersSpec carries known-good and known-bad sample numbers used by
// the test suite.
type TestNumbersSpec struct {
	Valid   []string `json:"valid" yaml:"valid"`
	Invalid []string `json:"invalid" yaml:"invalid"`
}
