// Package protect implements brace protection of capitalization in
// bibliographic titles. Words whose case would be mangled by BibTeX styles
// (acronyms, chemical formulas, eponyms, symbols) are wrapped in curly
// braces; existing brace groups and inline math pass through untouched.
package protect

import "strings"

// Protector wraps the fragility classifier and the grouping machinery with
// a fixed rule set. Protect is a pure function of its input and the rules,
// so a single Protector is safe for concurrent use as long as Debugf is.
type Protector struct {
	rules Rules

	// Debugf, when non-nil, receives a line per protection decision.
	Debugf func(format string, args ...any)
}

// New returns a Protector using the given rule set.
func New(rules Rules) *Protector {
	return &Protector{rules: rules}
}

// Protect wraps fragile tokens of title in curly braces. Existing brace
// groups and math spans are never re-wrapped, so the function is idempotent
// on its own output. Removing all braces from the result yields the input.
// Empty and malformed input is returned unchanged as far as possible; the
// function never fails.
func (p *Protector) Protect(title string) string {
	if title == "" {
		return ""
	}

	s := joinSubscriptPeriods(title)

	s, groups := mask(s)

	tokens := Tokenize(s, p.rules.Separators)

	for i, token := range tokens {
		prev := ""
		if i > 0 {
			prev = tokens[i-1]
		}
		if p.Fragile(token, prev) {
			// Mark contained placeholders as wrapped so unmask splices
			// the group content inside the added braces.
			tokens[i] = "{" + strings.ReplaceAll(token, string(phMark), string(phWrapMark)) + "}"
		}
	}

	return unmask(strings.Join(tokens, ""), groups)
}

// joinSubscriptPeriods replaces a period between two subscript digits with
// the SubJoin marker so that a subscript range like "₂.₅" is not split by
// the tokenizer. The escape layer turns the marker back into a period.
func joinSubscriptPeriods(s string) string {
	runes := []rune(s)
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] == '.' && isSubscriptDigit(runes[i-1]) && isSubscriptDigit(runes[i+1]) {
			runes[i] = SubJoin
		}
	}
	return string(runes)
}

func isSubscriptDigit(r rune) bool {
	return r >= '₀' && r <= '₉'
}
