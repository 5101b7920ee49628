package corpus

import "time"

// Document is a single tokenized text from the corpus.
type Document struct {
	Name   string   // base filename without extension
	Tokens []string // tokens in source order
	Meta   *Metadata
}

// Metadata carries per-document file information. It is attached only when
// the loader is configured to collect it.
type Metadata struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Corpus is an ordered collection of documents with unique names. Order
// follows the sorted filename order of the source directory so repeated
// runs over the same input produce identical results.
type Corpus struct {
	Documents []*Document
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.Documents)
}

// TotalTokens returns the token count summed over all documents.
func (c *Corpus) TotalTokens() int {
	total := 0
	for _, d := range c.Documents {
		total += len(d.Tokens)
	}
	return total
}
