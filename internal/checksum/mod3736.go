package checksum

import (
	"fmt"
	"strconv"

	"tracknum/internal/domain"
)

const mod3736Base = 36

// Mod3736 is the base-36 rolling checksum used by DPD parcel labels. The
// check digit may itself be a letter, so verification compares rendered
// strings rather than parsed integers.
type Mod3736 struct{}

// CheckDigit computes the expected check digit, rendered as 0-9 or A-Z.
func (v Mod3736) CheckDigit(serial domain.SerialNumber) (string, error) {
	cd := mod3736Base
	for _, r := range serial {
		val, err := base36Value(r)
		if err != nil {
			return "", err
		}
		cd += val
		if cd > mod3736Base {
			cd -= mod3736Base
		}
		cd *= 2
		if cd > mod3736Base {
			cd -= mod3736Base + 1
		}
	}

	cd = mod3736Base + 1 - cd
	if cd == mod3736Base {
		cd = 0
	}
	if cd < 0 || cd >= mod3736Base {
		return "", fmt.Errorf("%w: %d, expected [0,35]", ErrCheckDigitRange, cd)
	}

	if cd < 10 {
		return strconv.Itoa(cd), nil
	}
	return string(rune('A' + cd - 10)), nil
}

// Passes compares the claimed check digit against the rendered computation,
// case-sensitively.
func (v Mod3736) Passes(serial domain.SerialNumber, checkDigit string) bool {
	got, err := v.CheckDigit(serial)
	return err == nil && got == checkDigit
}

// base36Value maps 0-9 to themselves and A-Z (either case) to 10-35.
func base36Value(r rune) (int, error) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, nil
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadSerialSymbol, r)
}

var _ domain.ChecksumValidator = Mod3736{}
