package checksum

import (
	"strconv"

	"tracknum/internal/domain"
)

// Luhn implements the standard Luhn check digit: walk the digits in reverse,
// double every second one starting with the last, fold results above 9 back
// into a single digit and complement the sum modulo 10.
type Luhn struct{}

func (v Luhn) checkDigit(serial domain.SerialNumber) (int, error) {
	total := 0
	for i := 0; i < len(serial); i++ {
		d, err := digitValue(serial[len(serial)-1-i])
		if err != nil {
			return 0, err
		}
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
	}

	check := total % 10
	if check != 0 {
		check = 10 - check
	}
	return check, nil
}

// CheckDigit computes the expected check digit.
func (v Luhn) CheckDigit(serial domain.SerialNumber) (string, error) {
	d, err := v.checkDigit(serial)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d), nil
}

// Passes reports whether checkDigit satisfies the Luhn checksum.
func (v Luhn) Passes(serial domain.SerialNumber, checkDigit string) bool {
	return passesNumeric(v.checkDigit, serial, checkDigit)
}

var _ domain.ChecksumValidator = Luhn{}
