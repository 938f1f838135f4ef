package checksum

import (
	"strconv"

	"tracknum/internal/domain"
)

// SumProduct pairs digits with the configured weights positionally, sums the
// products and reduces the total by two successive moduli. Positions beyond
// the shorter of serial and weights are unweighted and ignored.
type SumProduct struct {
	Weights      []int
	FirstModulo  int
	SecondModulo int
}

func (v SumProduct) checkDigit(serial domain.SerialNumber) (int, error) {
	total := 0
	for i, r := range serial {
		if i >= len(v.Weights) {
			break
		}
		d, err := digitValue(r)
		if err != nil {
			return 0, err
		}
		total += d * v.Weights[i]
	}
	return total % v.FirstModulo % v.SecondModulo, nil
}

// CheckDigit computes the expected check digit.
func (v SumProduct) CheckDigit(serial domain.SerialNumber) (string, error) {
	d, err := v.checkDigit(serial)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d), nil
}

// Passes reports whether checkDigit satisfies the weighted-sum checksum.
func (v SumProduct) Passes(serial domain.SerialNumber, checkDigit string) bool {
	return passesNumeric(v.checkDigit, serial, checkDigit)
}

var _ domain.ChecksumValidator = SumProduct{}
