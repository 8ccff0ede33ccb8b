package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"

	"assessment-recommender/internal/catalog"
	"assessment-recommender/internal/domain/assessment"
	"assessment-recommender/internal/domain/recommend"
)

var (
	ErrUnknownType      = errors.New("unknown assessment type")
	ErrReloadInProgress = errors.New("reload already in progress")
)

type ReloadResult struct {
	Loaded int
	Source string
}

type CatalogUsecase interface {
	List(ctx context.Context, typeFilter string) ([]assessment.Assessment, error)
	Types(ctx context.Context) ([]string, error)
	Reload(ctx context.Context) (ReloadResult, error)
}

type reloadNotifier interface {
	CatalogUpdated(count int)
}

// Catalog serves the listing endpoints from the active engine snapshot
// and rebuilds that snapshot when the reload webhook fires. Listing reads
// the snapshot rather than the source so browsing always shows exactly
// the corpus recommendations are computed from.
type Catalog struct {
	source      catalog.Source
	boost       recommend.BoostConfig
	engines     *recommend.Provider
	invalidator CacheInvalidator
	notifier    reloadNotifier
	logger      *log.Logger

	reloadMu sync.Mutex
}

func NewCatalogUsecase(source catalog.Source, boost recommend.BoostConfig, engines *recommend.Provider, invalidator CacheInvalidator, notifier reloadNotifier, logger *log.Logger) *Catalog {
	return &Catalog{
		source:      source,
		boost:       boost,
		engines:     engines,
		invalidator: invalidator,
		notifier:    notifier,
		logger:      logger,
	}
}

func (u *Catalog) List(ctx context.Context, typeFilter string) ([]assessment.Assessment, error) {
	if u == nil || u.engines == nil {
		return nil, ErrEngineNotReady
	}
	eng := u.engines.Snapshot()
	if eng == nil {
		return nil, ErrEngineNotReady
	}

	items := eng.Assessments()

	tf := strings.TrimSpace(typeFilter)
	if tf == "" {
		return items, nil
	}
	t, err := assessment.ParseType(tf)
	if err != nil {
		return nil, ErrUnknownType
	}

	out := make([]assessment.Assessment, 0, len(items))
	for _, a := range items {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out, nil
}

func (u *Catalog) Types(ctx context.Context) ([]string, error) {
	if u == nil || u.engines == nil {
		return nil, ErrEngineNotReady
	}
	eng := u.engines.Snapshot()
	if eng == nil {
		return nil, ErrEngineNotReady
	}

	seen := map[string]bool{}
	for _, a := range eng.Assessments() {
		seen[string(a.Type)] = true
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types, nil
}

// Reload rebuilds the engine from the catalog source and publishes it.
// The previous snapshot stays live until the new one is fully built, so
// a failed reload never degrades a running service.
func (u *Catalog) Reload(ctx context.Context) (ReloadResult, error) {
	if u == nil || u.engines == nil || u.source == nil {
		return ReloadResult{}, ErrInternal
	}
	if !u.reloadMu.TryLock() {
		return ReloadResult{}, ErrReloadInProgress
	}
	defer u.reloadMu.Unlock()

	items, src, err := u.source.Load(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Catalog] reload load failed: %v", err)
		}
		return ReloadResult{}, ErrInternal
	}

	eng, err := recommend.NewEngine(items, u.boost)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Catalog] reload engine build failed: %v", err)
		}
		return ReloadResult{}, ErrInternal
	}

	u.engines.Swap(eng)

	if u.invalidator != nil {
		if err := u.invalidator.InvalidateRecommendations(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Catalog] cache invalidation failed: %v", err)
		}
	}
	if u.notifier != nil {
		u.notifier.CatalogUpdated(len(items))
	}
	if u.logger != nil {
		u.logger.Printf("[Catalog] reload complete source=%s count=%d", src, len(items))
	}

	return ReloadResult{Loaded: len(items), Source: src}, nil
}
