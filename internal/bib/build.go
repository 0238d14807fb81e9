package bib

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ristex/ristex/internal/protect"
	"github.com/ristex/ristex/internal/ris"
	"github.com/ristex/ristex/internal/texenc"
)

// Options controls the conversion pipeline.
type Options struct {
	Superscript string // markup template for superscript runs
	Subscript   string // markup template for subscript runs
	Colcap      bool   // capitalize the first word after a colon
	NoDash      bool   // replace en dashes between words by hyphens
	ShortYear   bool   // two-digit year in identifiers
	SkipA       bool   // omit the sublabel "a"
	ArXiv       bool   // keep eprint identifiers of published articles
	Nature      bool   // provide DOI and eprint via the url field
	SciPost     bool   // full eprint URLs, "misc" instead of "unpublished"
	EtAl        int    // maximum number of listed authors, 0 for no limit

	// Debugf, when non-nil, receives diagnostics about type defaults and
	// sublabel assignment.
	Debugf func(format string, args ...any)
}

// DefaultOptions mirrors the conversion defaults of the command line.
func DefaultOptions() Options {
	enc := texenc.DefaultOptions()
	return Options{
		Superscript: enc.Superscript,
		Subscript:   enc.Subscript,
		Colcap:      true,
		ArXiv:       true,
	}
}

var (
	colcapRe = regexp.MustCompile(`(: [^A-Z0-9\s]*?[a-z])`)
	noDashRe = regexp.MustCompile(`([^\d\s])--([^\d\s])`)

	// Narrow and no-break spaces are dropped from name lists.
	nameSpaces = strings.NewReplacer("\u00a0", " ", "\u2009", " ")
)

// rawFields are never escaped; they hold identifiers, not text.
var rawFields = map[string]bool{"AR": true, "DO": true, "UR": true}

// Build converts raw RIS records into sorted, labeled BibTeX entries.
// Records are processed independently; a defective record yields a
// best-effort entry rather than an error.
func Build(records []ris.Record, opts Options, p *protect.Protector) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, buildEntry(record, opts, p))
	}

	sortEntries(entries)
	assignSublabels(entries, opts)

	return entries
}

func buildEntry(record ris.Record, opts Options, p *protect.Protector) Entry {
	fields := make(map[string]string, len(record))
	for tag, value := range record {
		if tag != "TY" {
			fields[tag] = value
		}
	}
	entry := Entry{Type: record["TY"], Fields: fields}

	entry.ID = identifier(fields, opts)

	// Protect capitalization in the title.
	if title := fields["TI"]; title != "" {
		title = p.Protect(title)
		if opts.Colcap {
			title = colcapRe.ReplaceAllStringFunc(title, strings.ToUpper)
		}
		fields["TI"] = title
	}

	// Special spaces have no place in name lists.
	for _, tag := range []string{"AU", "A2"} {
		if fields[tag] != "" {
			fields[tag] = nameSpaces.Replace(fields[tag])
		}
	}

	// Reduce long author lists to the first author "and others".
	if opts.EtAl > 0 && fields["AU"] != "" {
		authors := strings.Split(fields["AU"], " and ")
		if len(authors) > opts.EtAl {
			fields["AU"] = authors[0] + " and others"
		}
	}

	// Distinguish thesis types by the first letter of the RIS type field.
	if m3 := fields["M3"]; m3 != "" {
		delete(fields, "M3")
		switch strings.ToLower(m3[:1]) {
		case "b":
			fields["M3"] = "Bachelor's thesis"
		case "m":
			fields["M3"] = "Master's thesis"
		case "d":
			fields["M3"] = "Dissertation"
		case "p":
			// "Ph.D. thesis" is the BibTeX default.
		}
	}

	// Replace non-ASCII characters by LaTeX escape sequences.
	enc := texenc.Options{Superscript: opts.Superscript, Subscript: opts.Subscript}
	for tag, value := range fields {
		if rawFields[tag] {
			continue
		}
		value = texenc.Escape(value, enc)
		if opts.NoDash {
			for {
				replaced := noDashRe.ReplaceAllString(value, "$1-$2")
				if replaced == value {
					break
				}
				value = replaced
			}
		}
		fields[tag] = value
	}

	// Unknown date components must sort after known ones.
	if da := fields["DA"]; da != "" {
		fields["DA"] = strings.ReplaceAll(da, "/", `\`)
	}

	// Fall back to the long journal name.
	if fields["J2"] == "" && fields["T2"] != "" {
		fields["J2"] = fields["T2"]
	}
	delete(fields, "T2")

	// An arXiv identifier in the journal field marks a preprint.
	if j2 := fields["J2"]; strings.HasPrefix(j2, "arXiv") {
		entry.Type = "unpublished"
		if _, id, ok := strings.Cut(strings.Fields(j2)[0], ":"); ok {
			fields["AP"] = "arXiv"
			fields["AR"] = id
		}
		delete(fields, "J2")
	}

	// So does "arXiv" as publisher.
	if fields["PB"] == "arXiv" {
		entry.Type = "unpublished"
	}

	// Derive howpublished from the URL for misc entries.
	if entry.Type == "misc" && fields["UR"] != "" {
		if strings.Contains(strings.ToLower(fields["UR"]), "zenodo") {
			fields["HP"] = "Zenodo"
		} else {
			hp := protocolRe.ReplaceAllString(fields["UR"], "")
			fields["HP"] = strings.ReplaceAll(hp, "/", `/\allowbreak `)
		}
	}

	// Prefer DOI or eprint identifier over a plain URL.
	if fields["UR"] != "" && (fields["DO"] != "" || fields["AR"] != "") {
		delete(fields, "UR")
	}

	// Prefer the eprint identifier of unpublished works over their DOI.
	if entry.Type == "unpublished" && fields["AR"] != "" && fields["DO"] != "" {
		delete(fields, "DO")
	}

	// Default type.
	if entry.Type == "" {
		if fields["J2"] != "" {
			entry.Type = "article"
		} else {
			entry.Type = "unpublished"
		}
		if opts.Debugf != nil {
			opts.Debugf("unknown type (set to %q): %s", entry.Type, entry.ID)
		}
	}

	applyJournalStyle(&entry, opts)

	return entry
}

var protocolRe = regexp.MustCompile(`^.*?//`)

// identifier derives the entry key from the simplified surname of the
// first author and the publication year.
func identifier(fields map[string]string, opts Options) string {
	author := fields["AU"]
	if author == "" {
		author = "Unknown"
	}
	surname, _, _ := strings.Cut(author, ",")
	id := Simplify(surname)

	year := fields["PY"]
	if opts.ShortYear {
		if year == "" {
			year = "XX"
		}
		if len(year) > 2 {
			year = year[len(year)-2:]
		}
	} else if year == "" {
		year = "XXXX"
	}

	return id + year
}

// applyJournalStyle adjusts link fields for journal-specific bibliography
// styles and strips eprint identifiers when not wanted.
func applyJournalStyle(entry *Entry, opts Options) {
	fields := entry.Fields

	switch {
	case opts.Nature:
		// Nature wants DOIs and eprints as URLs.
		if doi := fields["DO"]; doi != "" {
			fields["UR"] = "https://doi.org/" + doi
			delete(fields, "DO")
		} else if fields["AP"] == "arXiv" {
			fields["UR"] = "https://arxiv.org/abs/" + fields["AR"]
			delete(fields, "AR")
			delete(fields, "AP")
		}
	case opts.SciPost:
		// SciPost wants full eprint URLs and no "unpublished" entries.
		if fields["AP"] == "arXiv" {
			fields["AR"] = "https://arxiv.org/abs/" + fields["AR"]
			delete(fields, "AP")
		}
		if strings.Contains(strings.ToLower(fields["HP"]), "zenodo") &&
			strings.Contains(strings.ToLower(fields["DO"]), "zenodo") {
			delete(fields, "HP")
		}
		if entry.Type == "unpublished" {
			entry.Type = "misc"
		}
	}

	if !opts.ArXiv && entry.Type != "misc" && entry.Type != "unpublished" {
		delete(fields, "AP")
		delete(fields, "AR")
	}
}

// sortEntries orders entries by year, date, identifier, journal, volume,
// page and title. Numeric fields compare numerically.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if ya, yb := parseInt(a.Fields["PY"]), parseInt(b.Fields["PY"]); ya != yb {
			return ya < yb
		}
		if da, db := dateKey(a), dateKey(b); da != db {
			return da < db
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		if ja, jb := a.Fields["J2"], b.Fields["J2"]; ja != jb {
			return ja < jb
		}
		if va, vb := parseInt(a.Fields["VL"]), parseInt(b.Fields["VL"]); va != vb {
			return va < vb
		}
		if pa, pb := parseInt(a.Fields["SP"]), parseInt(b.Fields["SP"]); pa != pb {
			return pa < pb
		}
		return a.Fields["TI"] < b.Fields["TI"]
	})
}

// dateKey compares normalized date fields. Slashes were replaced by
// backslashes so that unknown date components sort after known ones.
func dateKey(e Entry) string {
	if da := e.Fields["DA"]; da != "" {
		return da
	}
	return "///"
}

// assignSublabels appends a, b, c, ... to identifiers shared by several
// entries. With SkipA the first entry of a group keeps the bare identifier.
func assignSublabels(entries []Entry, opts Options) {
	labels := "abcdefghijklmnopqrstuvwxyz"

	for start := 0; start < len(entries); {
		end := start
		for end < len(entries) && entries[end].ID == entries[start].ID {
			end++
		}

		if end-start > 1 {
			for k := start; k < end && k-start < len(labels); k++ {
				label := string(labels[k-start])
				if opts.SkipA && label == "a" {
					label = ""
				}
				entries[k].ID += label
				if opts.Debugf != nil && label != "" {
					opts.Debugf("sublabel: %s", entries[k].ID)
				}
			}
		}

		start = end
	}
}
