package checksum

import (
	"errors"
	"fmt"
	"strconv"

	"tracknum/internal/domain"
)

// Strategy names accepted in checksum specs.
const (
	NameS10        = "s10"
	NameMod7       = "mod7"
	NameMod10      = "mod10"
	NameMod3736    = "mod_37_36"
	NameSumProduct = "sum_product_with_weightings_and_modulo"
	NameLuhn       = "luhn"
)

var (
	// ErrBadSerialSymbol is returned when a serial number carries a symbol
	// the strategy cannot interpret, e.g. a letter reaching a digits-only
	// algorithm. Reaching this from a definition is a caller contract
	// violation, not a validation failure.
	ErrBadSerialSymbol = errors.New("serial number symbol not usable by checksum strategy")

	// ErrCheckDigitRange is returned when mod_37_36 arithmetic lands outside
	// [0,35], which correct inputs cannot produce.
	ErrCheckDigitRange = errors.New("computed check digit out of range")

	// ErrUnknownStrategy is returned by FromSpec for unrecognised names.
	ErrUnknownStrategy = errors.New("unknown checksum strategy")
)

// FromSpec resolves the checksum block of a validation spec into a
// validator. A nil validator with nil error means the spec configures no
// checksum at all.
func FromSpec(validation *domain.ValidationSpec) (domain.ChecksumValidator, error) {
	if validation == nil || validation.Checksum == nil {
		return nil, nil
	}

	spec := validation.Checksum
	switch spec.Name {
	case NameS10:
		return S10{}, nil
	case NameMod7:
		return Mod7{}, nil
	case NameMod10:
		return Mod10{
			OddsMultiplier:  spec.OddsMultiplier,
			EvensMultiplier: spec.EvensMultiplier,
		}, nil
	case NameMod3736:
		return Mod3736{}, nil
	case NameSumProduct:
		if len(spec.Weightings) == 0 || spec.Modulo1 == 0 || spec.Modulo2 == 0 {
			return nil, fmt.Errorf("%s: weightings, modulo1 and modulo2 are required", NameSumProduct)
		}
		return SumProduct{
			Weights:      spec.Weightings,
			FirstModulo:  spec.Modulo1,
			SecondModulo: spec.Modulo2,
		}, nil
	case NameLuhn:
		return Luhn{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, spec.Name)
}

// digitValue interprets a single decimal digit symbol.
func digitValue(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q", ErrBadSerialSymbol, r)
	}
	return int(r - '0'), nil
}

// passesNumeric is the shared verification path for strategies whose check
// digit is decimal: parse the claimed digit, compute the expected one and
// compare. Parse and computation failures fail the check rather than error.
func passesNumeric(compute func(domain.SerialNumber) (int, error), serial domain.SerialNumber, checkDigit string) bool {
	want, err := strconv.Atoi(checkDigit)
	if err != nil {
		return false
	}
	got, err := compute(serial)
	if err != nil {
		return false
	}
	return got == want
}
