package checksum

import (
	"strconv"

	"tracknum/internal/domain"
)

// Mod7 interprets the whole serial number as one base-10 integer and takes
// its remainder modulo 7. The remainder is accumulated digit by digit, so
// serials of any length stay within machine integers.
type Mod7 struct{}

func (v Mod7) checkDigit(serial domain.SerialNumber) (int, error) {
	m := 0
	for _, r := range serial {
		d, err := digitValue(r)
		if err != nil {
			return 0, err
		}
		m = (m*10 + d) % 7
	}
	return m, nil
}

// CheckDigit computes the expected check digit. A serial containing a
// non-digit symbol is a caller contract violation for this strategy and
// returns ErrBadSerialSymbol.
func (v Mod7) CheckDigit(serial domain.SerialNumber) (string, error) {
	d, err := v.checkDigit(serial)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d), nil
}

// Passes reports whether checkDigit satisfies the mod7 checksum.
func (v Mod7) Passes(serial domain.SerialNumber, checkDigit string) bool {
	return passesNumeric(v.checkDigit, serial, checkDigit)
}

var _ domain.ChecksumValidator = Mod7{}
