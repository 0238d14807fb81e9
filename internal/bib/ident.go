package bib

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var latexCommandRe = regexp.MustCompile(`\\\w+`)

// deaccent decomposes characters and strips combining marks, turning
// "Müller" into "Muller".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// specialFolds covers letters that do not decompose into a base letter
// plus combining marks.
var specialFolds = map[rune]rune{
	'ß': 's',
	'ø': 'o',
	'Ø': 'O',
	'ł': 'l',
	'Ł': 'L',
	'ı': 'i',
	'đ': 'd',
	'Đ': 'D',
}

// Simplify reduces an author name to the ASCII letters used in reference
// identifiers: LaTeX commands are removed, diacritics are stripped and
// everything except ASCII letters is dropped.
func Simplify(name string) string {
	name = latexCommandRe.ReplaceAllString(name, "")

	name = strings.Map(func(r rune) rune {
		if folded, ok := specialFolds[r]; ok {
			return folded
		}
		return r
	}, name)

	if folded, _, err := transform.String(deaccent, name); err == nil {
		name = folded
	}

	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseInt reads the digits of s as an integer, ignoring everything else.
// Used for numeric sorting of year, volume and page fields.
func parseInt(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}
