package checksum

import (
	"strconv"

	"tracknum/internal/domain"
)

// s10Weights apply to the first eight serial positions; anything beyond is
// unweighted.
var s10Weights = [...]int{8, 6, 4, 2, 3, 5, 9, 7}

// S10 implements the UPU S10 standard check digit.
type S10 struct{}

func (v S10) checkDigit(serial domain.SerialNumber) (int, error) {
	total := 0
	for i, r := range serial {
		if i >= len(s10Weights) {
			break
		}
		d, err := digitValue(r)
		if err != nil {
			return 0, err
		}
		total += d * s10Weights[i]
	}

	switch remainder := total % 11; remainder {
	case 1:
		return 0, nil
	case 0:
		return 5, nil
	default:
		return 11 - remainder, nil
	}
}

// CheckDigit computes the expected check digit.
func (v S10) CheckDigit(serial domain.SerialNumber) (string, error) {
	d, err := v.checkDigit(serial)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d), nil
}

// Passes reports whether checkDigit satisfies the S10 checksum.
func (v S10) Passes(serial domain.SerialNumber, checkDigit string) bool {
	return passesNumeric(v.checkDigit, serial, checkDigit)
}

var _ domain.ChecksumValidator = S10{}
