package dtm

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument reports a malformed statistics request, e.g. a negative
// top-N count.
var ErrInvalidArgument = errors.New("invalid argument")

// TermCount pairs a term with its corpus-wide count.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Ranking returns every vocabulary term sorted by descending corpus-wide
// count. Ties keep first-seen order, so the ranking is deterministic.
func (m *Matrix) Ranking() []TermCount {
	list := make([]TermCount, 0, len(m.terms))
	for _, t := range m.terms {
		list = append(list, TermCount{Term: t, Count: m.totals[t]})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Count > list[j].Count
	})
	return list
}

// MostFrequent returns the top-n terms of the ranking. These are the usual
// stopword candidates. A negative n is an error; an n beyond the vocabulary
// size returns the whole ranking.
func (m *Matrix) MostFrequent(n int) ([]TermCount, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: most frequent count %d is negative", ErrInvalidArgument, n)
	}
	ranking := m.Ranking()
	if n < len(ranking) {
		ranking = ranking[:n]
	}
	return ranking, nil
}

// Hapax returns the terms that occur exactly once across the corpus. No
// particular order is guaranteed.
func (m *Matrix) Hapax() []string {
	var out []string
	for _, t := range m.terms {
		if m.totals[t] == 1 {
			out = append(out, t)
		}
	}
	return out
}
