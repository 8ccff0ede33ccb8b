package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"assessment-recommender/internal/domain/assessment"
	"assessment-recommender/internal/domain/recommend"
)

var (
	ErrEmptyQuery     = errors.New("empty query")
	ErrEngineNotReady = errors.New("engine not ready")
	ErrInternal       = errors.New("internal error")
)

// MaxTopK caps how many results a single request may ask for.
const MaxTopK = 50

type RecommendParams struct {
	Query              string
	TestType           string
	RemoteOnly         bool
	AdaptiveOnly       bool
	MaxDurationMinutes *int
	TopK               int
}

type RecommendedItem struct {
	ID              string
	Name            string
	Type            string
	Description     string
	Skills          []string
	DurationMinutes int
	RemoteAvailable bool
	AdaptiveSupport bool
	Link            string
	Score           float64
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, params RecommendParams) ([]RecommendedItem, error)
}

type engineSource interface {
	Snapshot() *recommend.Engine
}

type Recommendation struct {
	engines     engineSource
	cache       RecommendCache
	defaultTopK int
	logger      *log.Logger
}

// NewRecommendationUsecase builds the recommend path. defaultTopK is the
// result count used when a request does not ask for one; zero or
// negative falls back to the engine default.
func NewRecommendationUsecase(engines engineSource, cache RecommendCache, defaultTopK int, logger *log.Logger) *Recommendation {
	if defaultTopK <= 0 || defaultTopK > MaxTopK {
		defaultTopK = recommend.DefaultTopK
	}
	return &Recommendation{engines: engines, cache: cache, defaultTopK: defaultTopK, logger: logger}
}

func (u *Recommendation) Recommend(ctx context.Context, params RecommendParams) ([]RecommendedItem, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if u == nil || u.engines == nil {
		return nil, ErrEngineNotReady
	}
	eng := u.engines.Snapshot()
	if eng == nil {
		return nil, ErrEngineNotReady
	}

	topK := params.TopK
	if topK <= 0 {
		topK = u.defaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}

	params.Query = query
	params.TopK = topK
	cacheKey := RecommendCacheKey(params)

	if u.cache != nil {
		var cached []RecommendedItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Recommend] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Recommend] Cache MISS: %s", cacheKey)
		}
	}

	scored := eng.Recommend(assessment.Query{
		Text:    query,
		Filters: params.filters(),
		TopK:    topK,
	})

	items := make([]RecommendedItem, 0, len(scored))
	for _, s := range scored {
		items = append(items, toRecommendedItem(s))
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, items, 0); err != nil {
			if u.logger != nil {
				u.logger.Printf("[Recommend] Cache store failed: %v", err)
			}
		}
	}

	return items, nil
}

// filters maps raw request values onto engine filters. A test_type that
// does not parse and a negative duration ceiling impose nothing.
func (p RecommendParams) filters() assessment.Filters {
	f := assessment.Filters{
		RemoteOnly:   p.RemoteOnly,
		AdaptiveOnly: p.AdaptiveOnly,
	}
	if t, err := assessment.ParseType(p.TestType); err == nil {
		f.TestType = &t
	}
	if p.MaxDurationMinutes != nil && *p.MaxDurationMinutes >= 0 {
		d := *p.MaxDurationMinutes
		f.MaxDurationMinutes = &d
	}
	return f
}

func toRecommendedItem(s recommend.ScoredAssessment) RecommendedItem {
	a := s.Assessment
	return RecommendedItem{
		ID:              a.ID,
		Name:            a.Name,
		Type:            string(a.Type),
		Description:     a.Description,
		Skills:          a.Skills,
		DurationMinutes: a.DurationMinutes,
		RemoteAvailable: a.RemoteAvailable,
		AdaptiveSupport: a.AdaptiveSupport,
		Link:            a.Link,
		Score:           s.Score,
	}
}
