package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracknum/internal/match"
)

func TestExact(t *testing.T) {
	m := match.Exact{Value: "GB"}
	assert.True(t, m.Matches("GB"))
	assert.False(t, m.Matches("gb"))
	assert.False(t, m.Matches("GBX"))
	assert.False(t, m.Matches(""))
}

func TestFromSpecRegexPrefixSemantics(t *testing.T) {
	m, err := match.FromSpec(map[string]any{"matches_regex": "R[A-Z]"})
	require.NoError(t, err)

	assert.True(t, m.Matches("RB"))
	// Prefix match: trailing symbols do not disqualify a value.
	assert.True(t, m.Matches("RBX"))
	assert.False(t, m.Matches("XRB"))
	assert.False(t, m.Matches("R1"))
}

func TestFromSpecExactWinsOverRegex(t *testing.T) {
	m, err := match.FromSpec(map[string]any{
		"matches":       "RB",
		"matches_regex": "[A-Z]{2}",
	})
	require.NoError(t, err)

	assert.True(t, m.Matches("RB"))
	assert.False(t, m.Matches("CD"))
}

func TestFromSpecErrors(t *testing.T) {
	t.Run("no criterion key", func(t *testing.T) {
		_, err := match.FromSpec(map[string]any{"name": "Courier"})
		require.ErrorIs(t, err, match.ErrInvalidMatcherSpec)
	})

	t.Run("matches must be a string", func(t *testing.T) {
		_, err := match.FromSpec(map[string]any{"matches": 42})
		require.Error(t, err)
	})

	t.Run("matches_regex must be a string", func(t *testing.T) {
		_, err := match.FromSpec(map[string]any{"matches_regex": []string{"R"}})
		require.Error(t, err)
	})

	t.Run("matches_regex must compile", func(t *testing.T) {
		_, err := match.FromSpec(map[string]any{"matches_regex": "([A-Z]"})
		require.Error(t, err)
	})
}
