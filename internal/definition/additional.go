package definition

import (
	"fmt"

	"tracknum/internal/domain"
	"tracknum/internal/match"
)

// MatcherInfo pairs one value matcher with the Info attached when it
// matches.
type MatcherInfo struct {
	Matcher domain.ValueMatcher
	Info    domain.Info
}

// Additional binds a named capture group to an ordered lookup of matchers.
// Declaration order is significant: the first matcher to accept the value
// supplies the Info, so overlapping matchers tie-break deterministically.
type Additional struct {
	Name      string
	GroupName string
	Lookup    []MatcherInfo
}

// newAdditional builds one extractor from its spec. Every lookup key except
// the two criterion keys becomes part of the entry's Info payload.
func newAdditional(spec domain.AdditionalSpec) (Additional, error) {
	lookup := make([]MatcherInfo, 0, len(spec.Lookup))
	for _, entry := range spec.Lookup {
		m, err := match.FromSpec(entry)
		if err != nil {
			return Additional{}, fmt.Errorf("additional %q: %w", spec.Name, err)
		}

		info := make(domain.Info, len(entry))
		for k, v := range entry {
			if k == "matches" || k == "matches_regex" {
				continue
			}
			info[k] = v
		}
		lookup = append(lookup, MatcherInfo{Matcher: m, Info: info})
	}

	return Additional{
		Name:      spec.Name,
		GroupName: spec.RegexGroupName,
		Lookup:    lookup,
	}, nil
}

// extract looks up the bound group's captured value and returns the first
// matching entry's Info. A present group with no matching entry yields
// nothing; whether that is an error is the required-additional list's call.
func (a Additional) extract(matchData map[string]string) (domain.Info, bool) {
	raw, ok := matchData[a.GroupName]
	if !ok || raw == "" {
		return nil, false
	}

	value := domain.RemoveWhitespace(raw)
	for _, entry := range a.Lookup {
		if entry.Matcher.Matches(value) {
			return entry.Info, true
		}
	}
	return nil, false
}
