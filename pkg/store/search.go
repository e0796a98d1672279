package store

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Field is one searchable projection of a record. Weight biases the
// fuzzy ranking toward the more telling fields (a name over a phone
// number).
type Field[E any] struct {
	Name   string
	Weight float64
	Value  func(E) string
}

// Scorer selects and orders the records matching a search term.
// Implementations must not mutate items.
type Scorer[E any] interface {
	Rank(term string, items []E) []E
}

type fuzzyScorer[E any] struct {
	fields []Field[E]
}

// NewFuzzyScorer ranks records by approximate match over the weighted
// fields. A record's score is the best per-field match score scaled by
// that field's weight; records with no matching field are dropped.
func NewFuzzyScorer[E any](fields []Field[E]) Scorer[E] {
	return &fuzzyScorer[E]{fields: fields}
}

type fieldSource[E any] struct {
	items []E
	value func(E) string
}

func (s fieldSource[E]) String(i int) string { return s.value(s.items[i]) }
func (s fieldSource[E]) Len() int            { return len(s.items) }

func (f *fuzzyScorer[E]) Rank(term string, items []E) []E {
	scores := map[int]float64{}

	for _, field := range f.fields {
		matches := fuzzy.FindFrom(term, fieldSource[E]{items: items, value: field.Value})
		for _, m := range matches {
			score := float64(m.Score) * field.Weight
			if best, ok := scores[m.Index]; !ok || best < score {
				scores[m.Index] = score
			}
		}
	}

	hits := make([]int, 0, len(scores))
	for i := range scores {
		hits = append(hits, i)
	}
	sort.Slice(hits, func(a, b int) bool {
		if scores[hits[a]] != scores[hits[b]] {
			return scores[hits[a]] > scores[hits[b]]
		}
		return hits[a] < hits[b]
	})

	ranked := make([]E, 0, len(hits))
	for _, i := range hits {
		ranked = append(ranked, items[i])
	}
	return ranked
}

type substringScorer[E any] struct {
	fields []Field[E]
}

// NewSubstringScorer keeps the records where any field contains the
// term, case-insensitively, preserving the input order. It is the
// fallback while no fuzzy index has been built yet.
func NewSubstringScorer[E any](fields []Field[E]) Scorer[E] {
	return &substringScorer[E]{fields: fields}
}

func (s *substringScorer[E]) Rank(term string, items []E) []E {
	needle := strings.ToLower(term)

	matched := make([]E, 0, len(items))
	for _, item := range items {
		for _, field := range s.fields {
			if strings.Contains(strings.ToLower(field.Value(item)), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
