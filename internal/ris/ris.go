// Package ris parses RIS tagged-line bibliographic records, as exported by
// Zotero and other reference managers.
package ris

import (
	"regexp"
	"strings"
)

// Record holds the raw fields of one RIS entry, keyed by RIS tag. The TY
// field is already mapped to a BibTeX entry type; AU and A2 accumulate
// multiple lines joined with " and ".
type Record map[string]string

// entryTypes maps RIS reference types to BibTeX entry types.
var entryTypes = map[string]string{
	"JOUR": "article",
	"BOOK": "book",
	"ELEC": "electronic",
	"CHAP": "incollection",
	"THES": "phdthesis",
	"COMP": "misc",
	"RPRT": "techreport",
}

// knownTags lists the RIS tags carried into records. Date (DA) and long
// journal name (T2) are read complementarily to PY and J2.
var knownTags = map[string]bool{
	"A2": true, "AP": true, "AR": true, "AU": true, "CY": true, "DA": true,
	"DO": true, "ET": true, "HP": true, "J2": true, "M3": true, "PB": true,
	"PY": true, "SP": true, "T2": true, "TI": true, "UR": true, "VL": true,
	"Y2": true,
}

var (
	recordEndRe = regexp.MustCompile(`\nER\s*-\s*`)
	tagLineRe   = regexp.MustCompile(`\s*-\s*`)
	linkTagRe   = regexp.MustCompile(`^L\d$`)
	arxivIDRe   = regexp.MustCompile(`(abs|pdf)/(.+?)(v\d+)?(\.pdf|$)`)
	doiURLRe    = regexp.MustCompile(`doi\.org/(.+?)/?$`)
	mcaRecordRe = regexp.MustCompile(`record/(.+?)/?$`)
)

// Parse reads RIS text and returns one record per ER-terminated block.
// Lines that do not look like tagged fields are skipped; Parse never fails.
func Parse(text string) []Record {
	var records []Record

	for _, block := range recordEndRe.Split(text, -1) {
		record := Record{}

		for _, line := range strings.Split(block, "\n") {
			parts := tagLineRe.Split(line, 2)
			if len(parts) != 2 {
				continue
			}
			tag, value := parts[0], parts[1]

			switch {
			case tag == "TY":
				if entryType, ok := entryTypes[value]; ok {
					record["TY"] = entryType
				}
			case (tag == "AU" || tag == "A2") && record[tag] != "":
				record[tag] += " and " + value
			case tag == "UR" || linkTagRe.MatchString(tag):
				mineLink(record, tag, value)
			case knownTags[tag]:
				record[tag] = value
			}
		}

		if len(record) > 0 {
			records = append(records, record)
		}
	}

	return records
}

// mineLink extracts arXiv identifiers, DOIs and Materials Cloud Archive
// coordinates from URL and link fields.
func mineLink(record Record, tag, value string) {
	if tag == "UR" {
		record["UR"] = value
	}

	lower := strings.ToLower(value)

	if record["AR"] == "" && strings.Contains(lower, "arxiv") {
		if m := arxivIDRe.FindStringSubmatch(value); m != nil {
			record["AP"] = "arXiv"
			record["AR"] = m[2]
		}
	}

	if record["DO"] == "" && strings.Contains(lower, "doi.org") {
		if m := doiURLRe.FindStringSubmatch(value); m != nil {
			record["DO"] = m[1]
		}
	}

	if strings.Contains(lower, "archive.materialscloud.org") {
		if m := mcaRecordRe.FindStringSubmatch(value); m != nil {
			if volume, pages, ok := strings.Cut(m[1], "."); ok {
				record["TY"] = "article"
				record["J2"] = "Materials Cloud Archive"
				record["VL"] = volume
				record["SP"] = pages
			}
		}
	}
}
