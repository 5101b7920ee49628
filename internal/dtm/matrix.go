// Package dtm builds a sparse document-term matrix from a corpus and derives
// frequency statistics from it: stopword candidates (the most frequent terms)
// and hapax legomena (terms occurring exactly once).
package dtm

import (
	"github.com/corpus-engine/toolkit/internal/corpus"
)

// Matrix is a sparse document-term matrix. Cells that are absent count as
// zero; a nonzero cell always corresponds to real token occurrences. The
// matrix is immutable after Build.
type Matrix struct {
	docs   []string                  // document names in corpus order
	terms  []string                  // vocabulary in first-seen order
	counts map[string]map[string]int // doc -> term -> count
	totals map[string]int            // term -> corpus-wide count
	docLen map[string]int            // doc -> token count
	total  int                       // tokens across the whole corpus
}

// Build counts token occurrences per document. Documents are visited in
// corpus order and tokens in source order, so the vocabulary keeps a
// deterministic first-seen order. A document whose name was already seen is
// skipped rather than merged.
func Build(c *corpus.Corpus) *Matrix {
	m := &Matrix{
		counts: make(map[string]map[string]int, c.Len()),
		totals: make(map[string]int),
		docLen: make(map[string]int, c.Len()),
	}
	for _, doc := range c.Documents {
		if _, dup := m.counts[doc.Name]; dup {
			continue
		}
		row := make(map[string]int)
		for _, tok := range doc.Tokens {
			if m.totals[tok] == 0 {
				m.terms = append(m.terms, tok)
			}
			row[tok]++
			m.totals[tok]++
			m.total++
		}
		m.counts[doc.Name] = row
		m.docLen[doc.Name] = len(doc.Tokens)
		m.docs = append(m.docs, doc.Name)
	}
	return m
}

// Docs returns the document names in corpus order.
func (m *Matrix) Docs() []string {
	out := make([]string, len(m.docs))
	copy(out, m.docs)
	return out
}

// Terms returns the vocabulary in first-seen order.
func (m *Matrix) Terms() []string {
	out := make([]string, len(m.terms))
	copy(out, m.terms)
	return out
}

// Count returns the number of occurrences of term in doc; zero when either
// is unknown.
func (m *Matrix) Count(doc, term string) int {
	return m.counts[doc][term]
}

// DocTotal returns the token count of doc.
func (m *Matrix) DocTotal(doc string) int {
	return m.docLen[doc]
}

// TermTotal returns the corpus-wide count of term.
func (m *Matrix) TermTotal(term string) int {
	return m.totals[term]
}

// DocFrequency returns the number of documents containing term at least once.
func (m *Matrix) DocFrequency(term string) int {
	df := 0
	for _, row := range m.counts {
		if row[term] > 0 {
			df++
		}
	}
	return df
}

// TotalTokens returns the token count summed over the whole corpus.
func (m *Matrix) TotalTokens() int {
	return m.total
}

// NumDocs returns the number of documents.
func (m *Matrix) NumDocs() int {
	return len(m.docs)
}

// NumTerms returns the vocabulary size.
func (m *Matrix) NumTerms() int {
	return len(m.terms)
}
