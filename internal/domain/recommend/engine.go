package recommend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"assessment-recommender/internal/domain/assessment"
	"assessment-recommender/internal/search"
)

// DefaultTopK is the result size used when a query does not ask for one.
const DefaultTopK = 10

// ScoredAssessment pairs a catalog entry with its score for one query.
// Score is always within [0, 1].
type ScoredAssessment struct {
	Assessment assessment.Assessment
	Score      float64
}

// Engine ranks a fixed assessment catalog against free-text queries.
// It is immutable after construction and safe for concurrent use; catalog
// changes are handled by building a new Engine and swapping pointers.
type Engine struct {
	assessments []assessment.Assessment
	vectorizer  *search.Vectorizer
	docVectors  [][]float64
	haystacks   []string
	boost       BoostConfig
}

// NewEngine builds the TF-IDF index and boost tables over the catalog.
// The catalog must be non-empty and every record valid.
func NewEngine(items []assessment.Assessment, boost BoostConfig) (*Engine, error) {
	if len(items) == 0 {
		return nil, errors.New("recommend: empty catalog")
	}
	for _, a := range items {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("recommend: %w", err)
		}
	}

	boost, err := boost.normalize()
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	catalog := make([]assessment.Assessment, len(items))
	copy(catalog, items)

	docs := make([]string, len(catalog))
	for i, a := range catalog {
		docs[i] = a.Document()
	}
	vectorizer, err := search.NewVectorizer(docs)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	e := &Engine{
		assessments: catalog,
		vectorizer:  vectorizer,
		docVectors:  make([][]float64, len(catalog)),
		haystacks:   make([]string, len(catalog)),
		boost:       boost,
	}
	for i, a := range catalog {
		e.docVectors[i] = vectorizer.Vector(docs[i])
		e.haystacks[i] = search.Normalize(a.Name + " " + strings.Join(a.Skills, " "))
	}
	return e, nil
}

// Size returns the number of assessments in the indexed catalog.
func (e *Engine) Size() int { return len(e.assessments) }

// Assessments returns a copy of the indexed catalog in corpus order.
func (e *Engine) Assessments() []assessment.Assessment {
	out := make([]assessment.Assessment, len(e.assessments))
	copy(out, e.assessments)
	return out
}

// Recommend scores every assessment against the query, applies the
// keyword boost layer, sorts descending with catalog order breaking ties
// and returns up to TopK entries passing the filters. When the filters
// reject everything, the single best-scoring assessment is returned so a
// caller always gets at least one suggestion.
//
// An empty query text is not an error: raw similarity degrades to zero
// and ordering falls back to boosts, then catalog order.
func (e *Engine) Recommend(q assessment.Query) []ScoredAssessment {
	topK := q.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	queryVec := e.vectorizer.Vector(q.Text)
	queryTokens := search.Tokenize(q.Text)
	detected := e.boost.Detect(q.Text)

	scored := make([]ScoredAssessment, len(e.assessments))
	for i, a := range e.assessments {
		raw := search.Cosine(queryVec, e.docVectors[i])
		score := raw +
			TypeAdjustment(detected, a.Type) +
			termBoost(queryTokens, e.haystacks[i], e.boost.PerTermBoost, e.boost.PerTermCap)
		scored[i] = ScoredAssessment{Assessment: a, Score: clip01(score)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	out := make([]ScoredAssessment, 0, topK)
	for _, s := range scored {
		if !q.Filters.Matches(s.Assessment) {
			continue
		}
		out = append(out, s)
		if len(out) == topK {
			break
		}
	}
	if len(out) == 0 {
		out = append(out, scored[0])
	}
	return out
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
