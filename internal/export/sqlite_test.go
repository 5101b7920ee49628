package export_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"

	"github.com/corpus-engine/toolkit/internal/export"
)

func TestWriteSQLite(t *testing.T) {
	m := twoDocMatrix()
	path := filepath.Join(t.TempDir(), "matrix.db")

	err := export.WriteSQLite(m, path)
	assert.NoError(t, err)

	db, err := sql.Open("sqlite", path)
	assert.NoError(t, err)
	defer db.Close()

	var docs, terms, cells int
	assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&docs))
	assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM terms").Scan(&terms))
	assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM counts").Scan(&cells))

	assert.Equal(t, 2, docs)
	assert.Equal(t, 4, terms)
	// Only nonzero cells are stored.
	assert.Equal(t, 6, cells)

	var count int
	err = db.QueryRow(`
	SELECT c.count FROM counts c
	JOIN documents d ON d.id = c.document_id
	JOIN terms t ON t.id = c.term_id
	WHERE d.name = ? AND t.term = ?`, "doc1", "cat").Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	// Absent cell: no row at all.
	err = db.QueryRow(`
	SELECT c.count FROM counts c
	JOIN documents d ON d.id = c.document_id
	JOIN terms t ON t.id = c.term_id
	WHERE d.name = ? AND t.term = ?`, "doc1", "dog").Scan(&count)
	assert.Equal(t, sql.ErrNoRows, err)
}
