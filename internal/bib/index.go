package bib

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// Index records the citation keys and DOIs present in an existing .bib
// file, so repeated conversions can merge instead of duplicating entries.
type Index struct {
	keys map[string]bool
	dois map[string]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		keys: make(map[string]bool),
		dois: make(map[string]string),
	}
}

var (
	entryStartRe = regexp.MustCompile(`@\w+\{([^,]+),`)
	doiFieldRe   = regexp.MustCompile(`(?i)^\s*doi\s*=\s*[{"]([^}"]+)[}"]`)
)

// ReadIndex builds an index from an existing .bib file. A missing file
// yields an empty index.
func ReadIndex(path string) (*Index, error) {
	idx := NewIndex()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var key string

	for scanner.Scan() {
		line := scanner.Text()

		if m := entryStartRe.FindStringSubmatch(line); m != nil {
			key = strings.TrimSpace(m[1])
			idx.keys[key] = true
		}

		if m := doiFieldRe.FindStringSubmatch(line); m != nil {
			if doi := NormalizeDOI(m[1]); doi != "" && key != "" {
				idx.dois[doi] = key
			}
		}
	}

	return idx, scanner.Err()
}

// Has reports whether an entry is already indexed, matching by DOI first
// and by citation key as fallback. Sublabeled variants of the key count as
// present.
func (idx *Index) Has(e Entry) bool {
	if doi := e.Fields["DO"]; doi != "" {
		if _, ok := idx.dois[NormalizeDOI(doi)]; ok {
			return true
		}
	}
	return idx.keys[e.ID]
}

// Add records an entry in the index.
func (idx *Index) Add(e Entry) {
	idx.keys[e.ID] = true
	if doi := NormalizeDOI(e.Fields["DO"]); doi != "" {
		idx.dois[doi] = e.ID
	}
}

// NormalizeDOI strips resolver prefixes and lowercases a DOI for
// comparison.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range []string{
		"https://doi.org/", "http://doi.org/", "doi.org/", "DOI:", "doi:",
	} {
		doi = strings.TrimPrefix(doi, prefix)
	}
	return strings.ToLower(doi)
}
