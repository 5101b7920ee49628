package export

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/corpus-engine/toolkit/internal/dtm"
)

// WriteSQLite persists the matrix into an SQLite database at path. Schema:
// documents and terms carry integer ids, counts holds one row per nonzero
// cell so the stored form stays as sparse as the in-memory one.
func WriteSQLite(m *dtm.Matrix, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	docStmt, err := tx.Prepare("INSERT OR IGNORE INTO documents (name) VALUES (?)")
	if err != nil {
		return err
	}
	defer docStmt.Close()

	termStmt, err := tx.Prepare("INSERT OR IGNORE INTO terms (term) VALUES (?)")
	if err != nil {
		return err
	}
	defer termStmt.Close()

	countStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO counts (document_id, term_id, count)
	VALUES ((SELECT id FROM documents WHERE name = ?),
	        (SELECT id FROM terms WHERE term = ?), ?)`)
	if err != nil {
		return err
	}
	defer countStmt.Close()

	for _, term := range m.Terms() {
		if _, err := termStmt.Exec(term); err != nil {
			return fmt.Errorf("failed to insert term %q: %w", term, err)
		}
	}
	for _, doc := range m.Docs() {
		if _, err := docStmt.Exec(doc); err != nil {
			return fmt.Errorf("failed to insert document %q: %w", doc, err)
		}
		for _, term := range m.Terms() {
			count := m.Count(doc, term)
			if count == 0 {
				continue
			}
			if _, err := countStmt.Exec(doc, term, count); err != nil {
				return fmt.Errorf("failed to insert count for (%s, %s): %w", doc, term, err)
			}
		}
	}

	return tx.Commit()
}

// createTables creates the documents/terms/counts schema.
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY,
		name TEXT UNIQUE NOT NULL
	)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS terms (
		id INTEGER PRIMARY KEY,
		term TEXT UNIQUE NOT NULL
	)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS counts (
		document_id INTEGER,
		term_id INTEGER,
		count INTEGER,
		PRIMARY KEY (document_id, term_id),
		FOREIGN KEY (document_id) REFERENCES documents(id),
		FOREIGN KEY (term_id) REFERENCES terms(id)
	)`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_counts_term ON counts(term_id)`)
	return err
}
