package definition

import (
	"fmt"
	"regexp"
	"strings"

	"tracknum/internal/checksum"
	"tracknum/internal/domain"
	"tracknum/internal/serial"
)

// Capture group names with fixed meaning across all courier specs.
const (
	groupSerialNumber = "SerialNumber"
	groupCheckDigit   = "CheckDigit"
)

// Definition is the matching rule for one courier+product pair.
type Definition struct {
	courier            domain.Courier
	product            domain.Product
	pattern            *regexp.Regexp
	trackingURLTmpl    string
	serialParser       domain.SerialNumberParser
	additional         []Additional
	requiredAdditional []string
	checksum           domain.ChecksumValidator
}

// FromSpec builds the definition declared by one tracking-number spec.
// Specs are trusted configuration: every required field is checked here,
// once, and a malformed spec fails construction rather than match time.
func FromSpec(courier domain.Courier, spec domain.TrackingNumberSpec) (*Definition, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("courier %q: tracking number spec missing name", courier.Code)
	}
	if spec.Regex == "" {
		return nil, fmt.Errorf("%s: regex is required", spec.Name)
	}
	if spec.Validation == nil {
		return nil, fmt.Errorf("%s: validation block is required", spec.Name)
	}

	// Candidates must match the whole string, never a substring of it.
	pattern, err := regexp.Compile(`\A(?:` + string(spec.Regex) + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%s: compile regex: %w", spec.Name, err)
	}

	var parser domain.SerialNumberParser
	if courier.Code == "ups" {
		parser = serial.UPS{}
	} else {
		parser, err = serial.NewDefault(spec.Validation)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}
	}

	validator, err := checksum.FromSpec(spec.Validation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}

	additional := make([]Additional, 0, len(spec.Additional))
	for _, as := range spec.Additional {
		a, err := newAdditional(as)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}
		additional = append(additional, a)
	}

	var required []string
	if spec.Validation.Additional != nil {
		required = append(required, spec.Validation.Additional.Exists...)
	}

	return &Definition{
		courier:            courier,
		product:            domain.Product{Name: spec.Name},
		pattern:            pattern,
		trackingURLTmpl:    spec.TrackingURL,
		serialParser:       parser,
		additional:         additional,
		requiredAdditional: required,
		checksum:           validator,
	}, nil
}

// Courier returns the courier this definition belongs to.
func (d *Definition) Courier() domain.Courier { return d.courier }

// Product returns the product this definition describes.
func (d *Definition) Product() domain.Product { return d.product }

// Checksum returns the bound checksum validator, nil when none is
// configured.
func (d *Definition) Checksum() domain.ChecksumValidator { return d.checksum }

// Test classifies candidate against this definition. A nil result means the
// candidate does not match the pattern at all; a non-nil result may still
// carry validation errors.
func (d *Definition) Test(candidate string) *domain.TrackingNumber {
	submatch := d.pattern.FindStringSubmatch(candidate)
	if submatch == nil {
		return nil
	}

	matchData := make(map[string]string)
	for i, name := range d.pattern.SubexpNames() {
		if i == 0 || name == "" || submatch[i] == "" {
			continue
		}
		matchData[name] = submatch[i]
	}

	var serialNumber domain.SerialNumber
	if raw, ok := matchData[groupSerialNumber]; ok {
		serialNumber = d.serialParser.Parse(domain.RemoveWhitespace(raw))
	}

	additional := make(map[string]domain.Info)
	for _, a := range d.additional {
		if info, ok := a.extract(matchData); ok {
			additional[a.Name] = info
		}
	}

	return &domain.TrackingNumber{
		Number:           candidate,
		Courier:          d.courier,
		Product:          d.product,
		SerialNumber:     serialNumber,
		TrackingURL:      d.TrackingURL(candidate),
		MatchData:        matchData,
		Additional:       additional,
		ValidationErrors: d.validationErrors(serialNumber, additional, matchData),
	}
}

// TrackingURL renders the courier's tracking page URL for number, or ""
// when the definition has no URL template.
func (d *Definition) TrackingURL(number string) string {
	if d.trackingURLTmpl == "" {
		return ""
	}
	return strings.Replace(d.trackingURLTmpl, "%s", number, 1)
}

func (d *Definition) validationErrors(serialNumber domain.SerialNumber, additional map[string]domain.Info, matchData map[string]string) []domain.ValidationError {
	var errs []domain.ValidationError
	if e := d.checksumError(serialNumber, matchData); e != nil {
		errs = append(errs, *e)
	}
	for _, key := range d.requiredAdditional {
		if _, ok := additional[key]; !ok {
			errs = append(errs, domain.ValidationError{
				Kind:    key,
				Message: fmt.Sprintf("%s not found in additional information", key),
			})
		}
	}
	return errs
}

func (d *Definition) checksumError(serialNumber domain.SerialNumber, matchData map[string]string) *domain.ValidationError {
	if d.checksum == nil {
		return nil
	}
	if len(serialNumber) == 0 {
		return &domain.ValidationError{Kind: "checksum", Message: "SerialNumber not found"}
	}
	checkDigit, ok := matchData[groupCheckDigit]
	if !ok {
		return &domain.ValidationError{Kind: "checksum", Message: "CheckDigit not found"}
	}
	if !d.checksum.Passes(serialNumber, checkDigit) {
		return &domain.ValidationError{Kind: "checksum", Message: "Checksum validation failed"}
	}
	return nil
}
