package bib

import (
	"fmt"
	"io"
	"strings"
)

// Format serializes one entry with its field names right-aligned to the
// longest present field.
func Format(e Entry) string {
	order := fieldOrders[e.Type]

	width := 0
	for _, f := range order {
		if e.Fields[f.Tag] != "" && len(f.Name) > width {
			width = len(f.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", e.Type, e.ID)
	for _, f := range order {
		if value := e.Fields[f.Tag]; value != "" {
			fmt.Fprintf(&b, "%*s = {%s},\n", width, f.Name, value)
		}
	}
	b.WriteString("}\n")

	return b.String()
}

// Write serializes all entries to w.
func Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := io.WriteString(w, Format(e)); err != nil {
			return err
		}
	}
	return nil
}
