package checksum

import (
	"strconv"

	"tracknum/internal/domain"
)

// Mod10 sums digits, optionally multiplying the ones at odd and/or even
// indices, and complements the total modulo 10. A zero multiplier leaves the
// corresponding positions unmultiplied.
type Mod10 struct {
	OddsMultiplier  int
	EvensMultiplier int
}

func (v Mod10) checkDigit(serial domain.SerialNumber) (int, error) {
	total := 0
	for i, r := range serial {
		d, err := digitValue(r)
		if err != nil {
			return 0, err
		}
		switch {
		case i%2 == 1 && v.OddsMultiplier != 0:
			total += d * v.OddsMultiplier
		case i%2 == 0 && v.EvensMultiplier != 0:
			total += d * v.EvensMultiplier
		default:
			total += d
		}
	}

	check := total % 10
	if check != 0 {
		check = 10 - check
	}
	return check, nil
}

// CheckDigit computes the expected check digit.
func (v Mod10) CheckDigit(serial domain.SerialNumber) (string, error) {
	d, err := v.checkDigit(serial)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d), nil
}

// Passes reports whether checkDigit satisfies the mod10 checksum.
func (v Mod10) Passes(serial domain.SerialNumber, checkDigit string) bool {
	return passesNumeric(v.checkDigit, serial, checkDigit)
}

var _ domain.ChecksumValidator = Mod10{}
