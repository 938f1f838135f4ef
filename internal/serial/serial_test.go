package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracknum/internal/domain"
	"tracknum/internal/serial"
)

func TestDefaultIdentity(t *testing.T) {
	p, err := serial.NewDefault(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SerialNumber("ABC123"), p.Parse("ABC123"))
	assert.Empty(t, p.Parse(""))
}

func TestDefaultPrependIf(t *testing.T) {
	spec := &domain.ValidationSpec{
		SerialNumberFormat: &domain.SerialNumberFormatSpec{
			PrependIf: &domain.PrependIfSpec{
				MatchesRegex: "^[0-9]{11}$",
				Content:      "0",
			},
		},
	}
	p, err := serial.NewDefault(spec)
	require.NoError(t, err)

	assert.Equal(t, domain.SerialNumber("012345678901"), p.Parse("12345678901"))
	// Serials the rule does not match pass through untouched.
	assert.Equal(t, domain.SerialNumber("1234"), p.Parse("1234"))
	assert.Equal(t, domain.SerialNumber("012345678901"), p.Parse("012345678901"))
}

func TestDefaultBadPrependPattern(t *testing.T) {
	spec := &domain.ValidationSpec{
		SerialNumberFormat: &domain.SerialNumberFormatSpec{
			PrependIf: &domain.PrependIfSpec{MatchesRegex: "([0-9]"},
		},
	}
	_, err := serial.NewDefault(spec)
	require.Error(t, err)
}

func TestUPSFoldsLetters(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		// (ASCII - 63) mod 10: A -> 2, B -> 3, R -> 9, Z -> 7.
		{"5R89AB12", "59892312"},
		{"Z999AA10123456784", "79992210123456784"},
		{"0123456789", "0123456789"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got := serial.UPS{}.Parse(tc.raw)
			assert.Equal(t, tc.expected, got.String())
		})
	}
}
