package search

import (
	"errors"
	"math"
	"sort"
)

// Vectorizer turns text into TF-IDF vectors over a fixed corpus vocabulary.
// It is immutable after construction and safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
	dimension  int
}

// NewVectorizer builds the vocabulary and IDF table from the corpus
// documents. Terms are sorted so vector positions are deterministic
// across runs on the same corpus.
func NewVectorizer(docs []string) (*Vectorizer, error) {
	if len(docs) == 0 {
		return nil, errors.New("tfidf: empty corpus")
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range Tokenize(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, errors.New("tfidf: corpus produced no terms")
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
		dimension:  len(terms),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.vocabulary[term] = i
		// smoothed IDF; never zero, so every known term contributes
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v, nil
}

// Dimension returns the vocabulary size, which is the length of every
// vector this vectorizer produces.
func (v *Vectorizer) Dimension() int { return v.dimension }

// Vector computes the L2-normalized TF-IDF vector for the text. Terms
// outside the corpus vocabulary are ignored; text with no known terms
// yields the zero vector.
func (v *Vectorizer) Vector(text string) []float64 {
	vec := make([]float64, v.dimension)

	counts := make(map[int]int)
	for _, term := range Tokenize(text) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return vec
	}

	for idx, count := range counts {
		vec[idx] = float64(count) * v.idf[idx]
	}

	// accumulate over the slice so the sum order, and with it the exact
	// float result, is stable across runs
	norm := 0.0
	for _, w := range vec {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for idx := range counts {
			vec[idx] /= norm
		}
	}
	return vec
}
