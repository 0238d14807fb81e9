// Package bib turns raw RIS records into finished BibTeX entries: it
// generates identifiers, protects and escapes field values, sorts entries
// and serializes them.
package bib

// Entry is one BibTeX entry. Fields are keyed by RIS tag; the emission
// order and BibTeX field names come from fieldOrders.
type Entry struct {
	Type   string
	ID     string
	Fields map[string]string
}

// Field pairs a BibTeX field name with the RIS tag it is filled from.
type Field struct {
	Name string
	Tag  string
}

// fieldOrders lists, per entry type, the emitted fields in order.
var fieldOrders = map[string][]Field{
	"article": {
		{"author", "AU"},
		{"title", "TI"},
		{"journal", "J2"},
		{"volume", "VL"},
		{"pages", "SP"},
		{"year", "PY"},
	},
	"unpublished": {
		{"author", "AU"},
		{"title", "TI"},
		{"year", "PY"},
	},
	"book": {
		{"author", "AU"},
		{"title", "TI"},
		{"edition", "ET"},
		{"publisher", "PB"},
		{"address", "CY"},
		{"year", "PY"},
	},
	"electronic": {
		{"author", "AU"},
		{"title", "TI"},
		{"urldate", "Y2"},
	},
	"incollection": {
		{"author", "AU"},
		{"title", "TI"},
		{"editor", "A2"},
		{"booktitle", "J2"},
		{"volume", "VL"},
		{"edition", "ET"},
		{"publisher", "PB"},
		{"address", "CY"},
		{"year", "PY"},
	},
	"phdthesis": {
		{"author", "AU"},
		{"title", "TI"},
		{"type", "M3"},
		{"school", "PB"},
		{"year", "PY"},
	},
	"misc": {
		{"author", "AU"},
		{"title", "TI"},
		{"howpublished", "HP"},
		{"year", "PY"},
	},
	"techreport": {
		{"author", "AU"},
		{"title", "TI"},
		{"institution", "PB"},
		{"year", "PY"},
	},
}

func init() {
	// Link fields close every entry type.
	tail := []Field{
		{"url", "UR"},
		{"doi", "DO"},
		{"archiveprefix", "AP"},
		{"eprint", "AR"},
	}
	for entryType := range fieldOrders {
		fieldOrders[entryType] = append(fieldOrders[entryType], tail...)
	}
}
