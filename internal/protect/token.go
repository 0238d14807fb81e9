package protect

import "strings"

// Tokenize splits s into a sequence of maximal runs of separator and
// non-separator characters. Concatenating the result reproduces s exactly;
// no token is empty and adjacent tokens alternate kind.
func Tokenize(s, separators string) []string {
	var tokens []string
	var current strings.Builder
	currentSep := false

	for _, r := range s {
		sep := strings.ContainsRune(separators, r)
		if current.Len() > 0 && sep != currentSep {
			tokens = append(tokens, current.String())
			current.Reset()
		}
		current.WriteRune(r)
		currentSep = sep
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
