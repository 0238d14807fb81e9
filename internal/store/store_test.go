package store

import (
	"path/filepath"
	"testing"

	"github.com/ristex/ristex/internal/bib"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "refs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testEntry() bib.Entry {
	return bib.Entry{
		Type: "article",
		ID:   "Kohn1965",
		Fields: map[string]string{
			"AU": "Kohn, W. and Sham, L. J.",
			"TI": "{NaCl} crystal structure",
			"J2": "Phys. Rev.",
			"VL": "140",
			"SP": "A1133",
			"PY": "1965",
			"DO": "10.1103/PhysRev.140.A1133",
		},
	}
}

func TestUpsertAndGet(t *testing.T) {
	db := testDB(t)

	if err := db.Upsert(testEntry()); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetByID("Kohn1965")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("GetByID returned nil for stored entry")
	}
	if got.Type != "article" || got.Fields["TI"] != "{NaCl} crystal structure" {
		t.Errorf("stored entry = %+v", got)
	}

	// The DOI is normalized on insert.
	if got.Fields["DO"] != "10.1103/physrev.140.a1133" {
		t.Errorf("DO = %q, want normalized", got.Fields["DO"])
	}
}

func TestGetMissing(t *testing.T) {
	db := testDB(t)

	got, err := db.GetByID("Nobody2000")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("GetByID on empty store = %+v, want nil", got)
	}
}

func TestGetByDOI(t *testing.T) {
	db := testDB(t)
	if err := db.Upsert(testEntry()); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetByDOI("https://doi.org/10.1103/PhysRev.140.A1133")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != "Kohn1965" {
		t.Errorf("GetByDOI = %+v, want Kohn1965", got)
	}
}

func TestHas(t *testing.T) {
	db := testDB(t)
	if err := db.Upsert(testEntry()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		entry bib.Entry
		want  bool
	}{
		{
			name:  "same identifier",
			entry: bib.Entry{ID: "Kohn1965", Fields: map[string]string{}},
			want:  true,
		},
		{
			name: "same DOI under different identifier",
			entry: bib.Entry{ID: "Other2000", Fields: map[string]string{
				"DO": "10.1103/PHYSREV.140.A1133",
			}},
			want: true,
		},
		{
			name:  "unknown",
			entry: bib.Entry{ID: "New2024", Fields: map[string]string{}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.Has(tt.entry)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Has(%s) = %v, want %v", tt.entry.ID, got, tt.want)
			}
		})
	}
}

func TestUpsertUpdates(t *testing.T) {
	db := testDB(t)

	e := testEntry()
	if err := db.Upsert(e); err != nil {
		t.Fatal(err)
	}

	e.Fields["TI"] = "Updated title"
	if err := db.Upsert(e); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetByID(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Fields["TI"] != "Updated title" {
		t.Errorf("TI = %q after update", got.Fields["TI"])
	}

	n, err := db.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Count = %d after upserting the same entry twice", n)
	}
}

func TestListOrder(t *testing.T) {
	db := testDB(t)

	for _, e := range []bib.Entry{
		{Type: "article", ID: "Young2021", Fields: map[string]string{"PY": "2021"}},
		{Type: "article", ID: "Old1999", Fields: map[string]string{"PY": "1999"}},
		{Type: "article", ID: "Mid2010", Fields: map[string]string{"PY": "2010"}},
	} {
		if err := db.Upsert(e); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := db.List()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Old1999", "Mid2010", "Young2021"}
	if len(entries) != len(want) {
		t.Fatalf("List returned %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i].ID != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, entries[i].ID, want[i])
		}
	}
}
