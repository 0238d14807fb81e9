package protect

import (
	"strings"
	"unicode/utf8"
)

// Fragile reports whether the capitalization of token must be protected
// with braces. prev is the immediately preceding token, or the empty string
// if token opens the title. The rules are checked in order; the first match
// decides.
func (p *Protector) Fragile(token, prev string) bool {
	// Only tokens with an uppercase ASCII letter are candidates.
	upperAt := strings.IndexFunc(token, func(r rune) bool { return r >= 'A' && r <= 'Z' })
	if upperAt < 0 {
		return false
	}

	// Two or more uppercase letters or digits: acronyms and formulas like
	// "NaCl" or "W90".
	count := 0
	for _, r := range token {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			count++
		}
	}
	if count > 1 {
		return p.decide(token, "acronym or formula")
	}

	// Uppercase letter after a lowercase letter, e.g. "eV".
	lowerAt := strings.IndexFunc(token, func(r rune) bool { return r >= 'a' && r <= 'z' })
	if lowerAt >= 0 && lowerAt < upperAt {
		return p.decide(token, "internal capital")
	}

	// The first letter of the entry keeps its case anyway.
	if prev == "" {
		return false
	}

	// So does the first letter after ": ", by BibTeX convention.
	if prev == ": " {
		return false
	}

	// Single uppercase letter used as a symbol, e.g. "T" for temperature.
	// The article "A" and any configured exceptions stay unprotected.
	if utf8.RuneCountInString(token) == 1 && !p.rules.PlainLetters[token] {
		return p.decide(token, "single letter")
	}

	// Token equals or derives from a known name, e.g. "Gaussian". Tokens
	// that are a name plus a plain grammatical suffix (-ion, -ions, -on,
	// -ons) are exempt when configured.
	for name := range p.rules.Names {
		if token == name {
			return p.decide(token, "known name")
		}
		if len(name) > 3 && strings.HasPrefix(token, name) {
			if !p.rules.ExemptSuffixes || !suffixExemptRe.MatchString(token[len(name):]) {
				return p.decide(token, "derived from known name")
			}
		}
	}

	// The letters of the token spell a chemical element, e.g. "Li".
	var letters strings.Builder
	for _, r := range token {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			letters.WriteRune(r)
		}
	}
	if p.rules.Elements[letters.String()] {
		return p.decide(token, "element symbol")
	}

	// Token follows abbreviation or sentence-ending punctuation.
	if strings.Contains(prev, ".") {
		return p.decide(token, "after period")
	}

	return false
}

// decide records a positive fragility decision on the diagnostics hook.
func (p *Protector) decide(token, reason string) bool {
	if p.Debugf != nil {
		p.Debugf("protect: %s (%s)", token, reason)
	}
	return true
}
