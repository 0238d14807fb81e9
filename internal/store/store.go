// Package store persists converted entries in a SQLite database, so that
// repeated conversions can skip references that were already handled.
package store

import (
	"database/sql"
	"fmt"

	"github.com/ristex/ristex/internal/bib"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database of converted entries.
type DB struct {
	db *sql.DB
}

// Open opens or creates the store at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	// SQLite does not support concurrent writes.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id         TEXT PRIMARY KEY,
			entry_type TEXT NOT NULL,
			doi        TEXT,
			year       TEXT,
			journal    TEXT,
			volume     TEXT,
			pages      TEXT,
			title      TEXT,
			authors    TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_entries_doi ON entries(doi)
			WHERE doi IS NOT NULL AND doi != '';
	`
	_, err := db.Exec(schema)
	return err
}

// Upsert inserts or replaces an entry by identifier.
func (d *DB) Upsert(e bib.Entry) error {
	_, err := d.db.Exec(`
		INSERT INTO entries (id, entry_type, doi, year, journal, volume, pages, title, authors)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			entry_type = excluded.entry_type,
			doi        = excluded.doi,
			year       = excluded.year,
			journal    = excluded.journal,
			volume     = excluded.volume,
			pages      = excluded.pages,
			title      = excluded.title,
			authors    = excluded.authors`,
		e.ID, e.Type, bib.NormalizeDOI(e.Fields["DO"]), e.Fields["PY"],
		e.Fields["J2"], e.Fields["VL"], e.Fields["SP"], e.Fields["TI"],
		e.Fields["AU"])
	if err != nil {
		return fmt.Errorf("upserting %s: %w", e.ID, err)
	}
	return nil
}

// GetByID returns the stored entry with the given identifier, or nil.
func (d *DB) GetByID(id string) (*bib.Entry, error) {
	return d.get(`SELECT id, entry_type, doi, year, journal, volume, pages, title, authors
		FROM entries WHERE id = ?`, id)
}

// GetByDOI returns the stored entry with the given DOI, or nil. The DOI is
// normalized before lookup.
func (d *DB) GetByDOI(doi string) (*bib.Entry, error) {
	return d.get(`SELECT id, entry_type, doi, year, journal, volume, pages, title, authors
		FROM entries WHERE doi = ?`, bib.NormalizeDOI(doi))
}

func (d *DB) get(query string, arg any) (*bib.Entry, error) {
	row := d.db.QueryRow(query, arg)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying store: %w", err)
	}
	return &e, nil
}

// Has reports whether an entry is already stored, matching by DOI first
// and by identifier as fallback.
func (d *DB) Has(e bib.Entry) (bool, error) {
	if doi := e.Fields["DO"]; doi != "" {
		stored, err := d.GetByDOI(doi)
		if err != nil {
			return false, err
		}
		if stored != nil {
			return true, nil
		}
	}

	stored, err := d.GetByID(e.ID)
	if err != nil {
		return false, err
	}
	return stored != nil, nil
}

// List returns all stored entries ordered by year and identifier.
func (d *DB) List() ([]bib.Entry, error) {
	rows, err := d.db.Query(`SELECT id, entry_type, doi, year, journal, volume, pages, title, authors
		FROM entries ORDER BY year, id`)
	if err != nil {
		return nil, fmt.Errorf("listing store: %w", err)
	}
	defer rows.Close()

	var entries []bib.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the number of stored entries.
func (d *DB) Count() (int, error) {
	var n int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

func scanEntry(scan func(...any) error) (bib.Entry, error) {
	var id, entryType string
	var doi, year, journal, volume, pages, title, authors sql.NullString

	err := scan(&id, &entryType, &doi, &year, &journal, &volume, &pages, &title, &authors)
	if err != nil {
		return bib.Entry{}, err
	}

	e := bib.Entry{Type: entryType, ID: id, Fields: map[string]string{}}
	for tag, value := range map[string]sql.NullString{
		"DO": doi, "PY": year, "J2": journal, "VL": volume,
		"SP": pages, "TI": title, "AU": authors,
	} {
		if value.String != "" {
			e.Fields[tag] = value.String
		}
	}

	return e, nil
}
