package serial

import (
	"fmt"
	"regexp"
	"unicode"

	"tracknum/internal/domain"
)

// Default splits the raw serial into its symbols in order. When the
// validation spec carries a serial_number_format.prepend_if rule, serials
// matching the rule's pattern get the rule's content prepended first.
type Default struct {
	prependMatch   *regexp.Regexp
	prependContent string
}

// NewDefault builds the parser declared by a validation spec. With no
// serial_number_format block the parser is the identity split.
func NewDefault(validation *domain.ValidationSpec) (*Default, error) {
	p := &Default{}
	if validation == nil || validation.SerialNumberFormat == nil || validation.SerialNumberFormat.PrependIf == nil {
		return p, nil
	}

	rule := validation.SerialNumberFormat.PrependIf
	re, err := regexp.Compile(rule.MatchesRegex)
	if err != nil {
		return nil, fmt.Errorf("compile prepend_if pattern: %w", err)
	}
	p.prependMatch = re
	p.prependContent = rule.Content
	return p, nil
}

// Parse returns the symbol sequence for raw.
func (p *Default) Parse(raw string) domain.SerialNumber {
	if p.prependMatch != nil && p.prependMatch.MatchString(raw) {
		raw = p.prependContent + raw
	}
	return domain.SerialNumber(raw)
}

// UPS folds alphabetic symbols into the digit values UPS assigns them
// ((ASCII - 63) mod 10) before the usual split; digits pass through.
type UPS struct{}

// Parse returns the symbol sequence for raw with letters folded to digits.
func (UPS) Parse(raw string) domain.SerialNumber {
	out := make(domain.SerialNumber, 0, len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) {
			r = rune('0' + (unicode.ToUpper(r)-63)%10)
		}
		out = append(out, r)
	}
	return out
}

var (
	_ domain.SerialNumberParser = (*Default)(nil)
	_ domain.SerialNumberParser = UPS{}
)
