// Package export persists the document-term matrix and its derived
// statistics: a dense CSV table, an SQLite database, and a JSON frequency
// report.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/corpus-engine/toolkit/internal/dtm"
)

// WriteCSV writes the matrix as a dense table: one row per document, one
// column per vocabulary term in first-seen order, cell values are counts.
func WriteCSV(m *dtm.Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	terms := m.Terms()
	w := csv.NewWriter(f)

	header := make([]string, 0, len(terms)+1)
	header = append(header, "document")
	header = append(header, terms...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, doc := range m.Docs() {
		row := make([]string, 0, len(terms)+1)
		row = append(row, doc)
		for _, term := range terms {
			row = append(row, strconv.Itoa(m.Count(doc, term)))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", doc, err)
		}
	}

	w.Flush()
	return w.Error()
}
