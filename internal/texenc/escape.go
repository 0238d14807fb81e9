package texenc

import (
	"regexp"
	"strings"

	"github.com/ristex/ristex/internal/protect"
)

// Options configures the markup emitted for superscript and subscript
// character runs. Every X in a template stands for the captured run.
type Options struct {
	Superscript string
	Subscript   string
}

// DefaultOptions returns the standard LaTeX text-mode markup. Math-mode
// alternatives are "$^{X}$" and "$_{X}$".
func DefaultOptions() Options {
	return Options{
		Superscript: `\textsuperscript{X}`,
		Subscript:   `\textsubscript{X}`,
	}
}

var (
	superRangeRe *regexp.Regexp
	subRangeRe   *regexp.Regexp
	mathRangeRe  *regexp.Regexp

	digitBraceRe = regexp.MustCompile(`\{(\d)\}`)
	singleSubRe  = regexp.MustCompile(`_\{(\w)\}`)
	mathSpanRe   = regexp.MustCompile(`\$[^$]+\$`)
	multiSpaceRe = regexp.MustCompile(`  +`)
)

func init() {
	sup := runeClass(superscripts)
	sub := runeClass(subscripts)
	mth := runeClass(math)

	superRangeRe = regexp.MustCompile(`([` + sup + `]+)`)

	// Subscript runs may contain periods and commas between subscript
	// characters (numeric ranges), including the joiner marker left by the
	// protection engine.
	subRangeRe = regexp.MustCompile(
		`([` + sub + `]+([` + sub + string(protect.SubJoin) + `.,]+[` + sub + `])?)`)

	// A math run is a run of math symbols, optionally extended over
	// adjacent digits, spaces and the letter x (products like "2 × 2").
	mathRangeRe = regexp.MustCompile(
		`(([` + mth + `\d][` + mth + `\d\sx]*)?[` + mth + `]+([` + mth + `\d\sx]*[` + mth + `\d])?)`)
}

// runeClass concatenates the keys of a rune table for use in a character
// class. None of the table keys is a regexp metacharacter.
func runeClass(table map[rune]string) string {
	var b strings.Builder
	for r := range table {
		b.WriteRune(r)
	}
	return b.String()
}

// template converts a caller-supplied X-placeholder format into a regexp
// replacement string referencing capture group 1. Every X receives the
// captured run.
func template(format string) string {
	format = strings.ReplaceAll(format, "$", "$$")
	return strings.ReplaceAll(format, "X", "${1}")
}

// Escape replaces non-ASCII characters in s with LaTeX escape sequences and
// wraps superscript, subscript and math-symbol runs in the corresponding
// markup. The output is plain ASCII for any input covered by the tables.
func Escape(s string, opts Options) string {
	if opts.Superscript == "" {
		opts.Superscript = DefaultOptions().Superscript
	}
	if opts.Subscript == "" {
		opts.Subscript = DefaultOptions().Subscript
	}

	// Markup around character ranges comes first, while the ranges are
	// still recognizable as Unicode runs.
	s = superRangeRe.ReplaceAllString(s, template(opts.Superscript))
	s = subRangeRe.ReplaceAllString(s, template(opts.Subscript))
	s = mathRangeRe.ReplaceAllString(s, `$$${1}$$`)

	// Per-character substitution.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Drop braces around single digits and single subscript characters.
	s = digitBraceRe.ReplaceAllString(s, "$1")
	s = singleSubRe.ReplaceAllString(s, "_$1")

	// \ensuremath is redundant inside math mode.
	s = mathSpanRe.ReplaceAllStringFunc(s, func(span string) string {
		return strings.ReplaceAll(span, `\ensuremath`, "")
	})

	// Avoid line breaks at equals signs and collapse space runs.
	s = strings.ReplaceAll(s, " = ", "~=~")
	s = multiSpaceRe.ReplaceAllString(s, " ")

	return s
}
