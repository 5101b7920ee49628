package export

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/corpus-engine/toolkit/internal/dtm"
)

// Report summarizes corpus-wide frequency statistics.
type Report struct {
	Documents   int             `json:"documents"`
	Vocabulary  int             `json:"vocabulary"`
	TotalTokens int             `json:"total_tokens"`
	TopTerms    []dtm.TermCount `json:"top_terms"`
	Hapax       []string        `json:"hapax"`
}

// BuildReport derives a frequency report from the matrix. topN bounds the
// stopword-candidate list; the hapax set is sorted for stable output.
func BuildReport(m *dtm.Matrix, topN int) (*Report, error) {
	top, err := m.MostFrequent(topN)
	if err != nil {
		return nil, err
	}
	hapax := m.Hapax()
	sort.Strings(hapax)
	return &Report{
		Documents:   m.NumDocs(),
		Vocabulary:  m.NumTerms(),
		TotalTokens: m.TotalTokens(),
		TopTerms:    top,
		Hapax:       hapax,
	}, nil
}

// WriteReport writes the report to path as indented JSON.
func WriteReport(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
