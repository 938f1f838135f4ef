package match

import (
	"errors"
	"fmt"
	"regexp"

	"tracknum/internal/domain"
)

// ErrInvalidMatcherSpec is returned when a lookup entry carries neither a
// "matches" nor a "matches_regex" key.
var ErrInvalidMatcherSpec = errors.New("matcher spec carries neither matches nor matches_regex")

// Exact accepts exactly one literal value.
type Exact struct {
	Value string
}

// Matches reports whether value equals the accepted literal.
func (m Exact) Matches(value string) bool { return m.Value == value }

// Regex accepts values matching a pattern anchored at the start.
type Regex struct {
	Pattern *regexp.Regexp
}

// Matches reports whether value matches the pattern.
func (m Regex) Matches(value string) bool { return m.Pattern.MatchString(value) }

// FromSpec builds the matcher declared by one lookup entry. The two
// criterion keys are mutually exclusive in practice; "matches" wins when
// both appear.
func FromSpec(spec map[string]any) (domain.ValueMatcher, error) {
	if v, ok := spec["matches"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("matches must be a string, got %T", v)
		}
		return Exact{Value: s}, nil
	}

	if v, ok := spec["matches_regex"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("matches_regex must be a string, got %T", v)
		}
		// Anchor at the start only; lookup patterns are prefix matches.
		re, err := regexp.Compile("^(?:" + s + ")")
		if err != nil {
			return nil, fmt.Errorf("compile matches_regex: %w", err)
		}
		return Regex{Pattern: re}, nil
	}

	return nil, ErrInvalidMatcherSpec
}

var (
	_ domain.ValueMatcher = Exact{}
	_ domain.ValueMatcher = Regex{}
)
