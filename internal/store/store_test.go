package store_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracknum/internal/domain"
	"tracknum/internal/store"
)

func newLoader() *store.Loader {
	return store.NewLoader(zerolog.Nop())
}

func TestLoadDir(t *testing.T) {
	specs, err := newLoader().LoadDir(filepath.Join("testdata", "valid"))
	require.NoError(t, err)
	require.Len(t, specs, 2, "non-spec files must be skipped")

	// Lexical filename order.
	assert.Equal(t, "acme", specs[0].CourierCode)
	assert.Equal(t, "zenith", specs[1].CourierCode)

	// Fragment-list regexes concatenate in order, in both formats.
	require.Len(t, specs[0].TrackingNumbers, 1)
	assert.Equal(t, domain.RegexSpec("(?P<SerialNumber>[0-9]{7})(?P<CheckDigit>[0-9])"), specs[0].TrackingNumbers[0].Regex)
	assert.Equal(t, domain.RegexSpec("(?P<SerialNumber>[0-9]{9})(?P<CheckDigit>[0-9])"), specs[1].TrackingNumbers[0].Regex)
	assert.Equal(t, "https://zenith.example/track?n=%s", specs[1].TrackingNumbers[0].TrackingURL)
}

func TestLoadDirMissing(t *testing.T) {
	_, err := newLoader().LoadDir(filepath.Join("testdata", "no-such-dir"))
	require.Error(t, err)
}

func TestLoadDirSchemaValidation(t *testing.T) {
	_, err := newLoader().LoadDir(filepath.Join("testdata", "missing_code"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestLoadDirMalformedJSON(t *testing.T) {
	_, err := newLoader().LoadDir(filepath.Join("testdata", "malformed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}

func TestEmbedded(t *testing.T) {
	specs, err := newLoader().Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, specs)

	codes := make(map[string]bool, len(specs))
	for _, cs := range specs {
		codes[cs.CourierCode] = true
		assert.NotEmpty(t, cs.Name)
		require.NotEmpty(t, cs.TrackingNumbers, cs.CourierCode)
		for _, ts := range cs.TrackingNumbers {
			assert.NotNil(t, ts.TestNumbers, "%s/%s ships without sample numbers", cs.CourierCode, ts.Name)
		}
	}

	for _, code := range []string{"s10", "ups", "dhl", "fedex", "dpd", "usps"} {
		assert.True(t, codes[code], "embedded set missing %s", code)
	}
}
