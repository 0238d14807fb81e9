// Package bbl extracts the entries of a BibTeX-generated .bbl file
// (REVTeX style, \BibitemOpen ... \BibitemShut blocks) and renders them as
// an HTML list or a plain LaTeX list.
package bbl

import (
	"fmt"
	"regexp"
	"strings"
)

// Item is one bibliography entry: its citation key and its rewritten body.
type Item struct {
	Key  string
	Text string
}

// mark introduces placeholders for masked brace groups, as a private-use
// rune plus a fixed-width index that cannot collide with entry text.
const mark = '\uE000'

func placeholder(n int) string {
	return fmt.Sprintf("%c%03d", mark, n)
}

// arg matches one argument of a bibliography macro: a placeholder for a
// masked group, a bare digit, or a space followed by a single character.
const arg = ` *(\x{E000}\d{3}|\d| \S)`

var (
	// keyedItemRe captures the citation key from the preceding \bibitem
	// label together with the entry body.
	keyedItemRe = regexp.MustCompile(`(?s)\{([^{}]*?)\}[^{}]*?\\BibitemOpen(.+?)\\BibitemShut`)
	bareItemRe  = regexp.MustCompile(`(?s)\\BibitemOpen(.+?)\\BibitemShut`)

	braceGroupRe = regexp.MustCompile(`\{[^{]*?\}`)
	spaceRunRe   = regexp.MustCompile(`  +`)
)

// rewrite is one macro substitution applied to every masked part of an
// entry body.
type rewrite struct {
	re   *regexp.Regexp
	repl string
}

// transform collapses whitespace in an entry body, masks its brace groups
// innermost first, applies the rewrites to every group, and splices the
// groups back together without their grouping braces.
func transform(s string, rewrites []rewrite) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceRunRe.ReplaceAllString(s, " ")

	var groups []string
	for strings.Contains(s, "{") {
		found := braceGroupRe.FindAllString(s, -1)
		if len(found) == 0 {
			break // unbalanced, leave as is
		}
		for _, group := range found {
			groups = append(groups, group[1:len(group)-1])
			s = strings.ReplaceAll(s, group, placeholder(len(groups)))
		}
	}
	groups = append(groups, s)

	for n, group := range groups {
		for _, rw := range rewrites {
			group = rw.re.ReplaceAllString(group, rw.repl)
		}
		groups[n] = group
	}

	s = groups[len(groups)-1]
	for n := len(groups) - 1; n >= 1; n-- {
		s = strings.ReplaceAll(s, placeholder(n), groups[n-1])
	}

	return s
}

// items returns the entry bodies of a .bbl file, with citation keys when
// keyed. The first \BibitemOpen ... \BibitemShut span belongs to the
// \providecommand preamble and is dropped.
func items(s string, keyed bool) []Item {
	var result []Item

	if keyed {
		for i, m := range keyedItemRe.FindAllStringSubmatch(s, -1) {
			if i == 0 {
				continue
			}
			result = append(result, Item{Key: m[1], Text: m[2]})
		}
		return result
	}

	for i, m := range bareItemRe.FindAllStringSubmatch(s, -1) {
		if i == 0 {
			continue
		}
		result = append(result, Item{Text: m[1]})
	}
	return result
}
