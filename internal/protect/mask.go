package protect

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholders use private-use runes followed by a fixed-width index, so
// they cannot collide with numerals or markup already present in a title.
const (
	// phMark introduces a placeholder for a masked group.
	phMark = '\uE000'
	// phWrapMark replaces phMark inside tokens that the engine wrapped in
	// braces, so unmask can splice the group content inside the added
	// braces without its own braces.
	phWrapMark = '\uE001'
)

// SubJoin temporarily stands in for a period between subscript digits,
// keeping numeric subscript ranges like "₂.₅" in one token. The escape
// layer restores it to a literal period.
const SubJoin = '\uE002'

var (
	// Innermost brace groups: a brace span with no inner opening brace.
	braceGroupRe = regexp.MustCompile(`\{[^{]*?\}`)
	// Inline math spans. Math is not nested.
	mathSpanRe = regexp.MustCompile(`\$[^$]+\$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
)

func placeholder(n int) string {
	return fmt.Sprintf("%c%03d", phMark, n)
}

func wrappedPlaceholder(n int) string {
	return fmt.Sprintf("%c%03d", phWrapMark, n)
}

// mask replaces brace groups and inline math spans in s with placeholders
// and returns the masked string together with the extracted groups. Brace
// groups are extracted innermost first, one nesting level per pass. Math
// spans containing an uppercase letter are stored pre-wrapped in braces so
// case-sensitive math survives later normalization of the surrounding text.
// A stray unmatched brace is left in place.
func mask(s string) (string, []string) {
	var groups []string

	for strings.Contains(s, "{") {
		found := braceGroupRe.FindAllString(s, -1)
		if len(found) == 0 {
			break // unbalanced, leave as is
		}
		for _, group := range found {
			groups = append(groups, group)
			s = strings.ReplaceAll(s, group, placeholder(len(groups)))
		}
	}

	for _, span := range mathSpanRe.FindAllString(s, -1) {
		groups = append(groups, span)
		if upperRe.MatchString(span) {
			groups[len(groups)-1] = "{" + span + "}"
		}
		s = strings.ReplaceAll(s, span, placeholder(len(groups)))
	}

	return s, groups
}

// unmask restores masked groups into s, highest index first so that a
// placeholder embedded in a restored group is itself resolved on a later
// iteration. Placeholders carrying the wrapped marker receive the group
// content without its surrounding braces, since the engine already added a
// brace pair around the whole token.
func unmask(s string, groups []string) string {
	for n := len(groups); n >= 1; n-- {
		s = strings.ReplaceAll(s, placeholder(n), groups[n-1])
		s = strings.ReplaceAll(s, wrappedPlaceholder(n), strings.Trim(groups[n-1], "{}"))
	}
	return s
}
