// Package pdfmeta pulls bibliographic identifiers out of article PDFs.
package pdfmeta

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// doiRe matches DOIs: 10.<registrant>/<suffix>.
var doiRe = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// ExtractDOI scans the first pages of a PDF for a DOI. Journals print the
// DOI on the first page, so three pages are plenty. A PDF without a DOI
// yields an empty string, not an error.
func ExtractDOI(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	maxPages := 3
	if r.NumPage() < maxPages {
		maxPages = r.NumPage()
	}

	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if doi := FindDOI(text); doi != "" {
			return doi, nil
		}
	}

	return "", nil
}

// FindDOI returns the first valid DOI in text, with trailing punctuation
// stripped, or an empty string.
func FindDOI(text string) string {
	for _, match := range doiRe.FindAllString(text, -1) {
		match = strings.TrimRight(match, ".,;:)")
		if validDOI(match) {
			return match
		}
	}
	return ""
}

// validDOI rejects matches that cannot be real DOIs: too short, or with an
// empty suffix.
func validDOI(doi string) bool {
	if len(doi) < 10 {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash > 0 && slash < len(doi)-1
}
