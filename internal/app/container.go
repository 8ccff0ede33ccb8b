package app

import (
	"context"
	"log"
	"time"

	"assessment-recommender/internal/catalog"
	"assessment-recommender/internal/config"
	"assessment-recommender/internal/database"
	"assessment-recommender/internal/database/migration"
	dbpostgres "assessment-recommender/internal/database/postgres"
	"assessment-recommender/internal/database/seeder"
	"assessment-recommender/internal/domain/recommend"
	"assessment-recommender/internal/infrastructure/cache"
	"assessment-recommender/internal/repository"
	"assessment-recommender/internal/usecase"
	"assessment-recommender/internal/ws"
)

type Container struct {
	Config      config.Config
	DB          database.DB
	Cache       *cache.Redis
	Engines     *recommend.Provider
	RecommendUC usecase.RecommendationUsecase
	CatalogUC   usecase.CatalogUsecase
	Logger      *log.Logger
}

// NewContainer wires the whole service. With the file source, a broken
// catalog is fatal: starting without an engine would hide corruption.
// With the Postgres source the service starts degraded instead and
// serves 503 until a reload succeeds, because the scraper may simply not
// have filled the table yet.
func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	boost, err := recommend.LoadBoostConfig(cfg.Catalog.BoostPath)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var db database.DB
	var source catalog.Source
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err = dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.RunMigrations {
			if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		if cfg.Database.RunSeeders {
			if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		source = catalog.RepositorySource{Repo: repository.NewPostgresAssessmentRepository(db)}
	default:
		source = catalog.FileSource{Path: cfg.Catalog.Path}
	}

	engines := recommend.NewProvider(nil)
	if items, srcName, err := source.Load(ctx); err != nil {
		if cfg.Catalog.Source == config.CatalogSourceFile {
			return nil, err
		}
		logger.Printf("[Engine] starting without engine, waiting for reload: %v", err)
	} else if eng, err := recommend.NewEngine(items, boost); err != nil {
		if cfg.Catalog.Source == config.CatalogSourceFile {
			return nil, err
		}
		logger.Printf("[Engine] starting without engine, waiting for reload: %v", err)
	} else {
		engines.Swap(eng)
		logger.Printf("[Engine] ready source=%s count=%d", srcName, eng.Size())
	}

	redis := cache.NewRedis(logger)

	recommendUC := usecase.NewRecommendationUsecase(engines, redis, cfg.Catalog.TopK, logger)
	catalogUC := usecase.NewCatalogUsecase(source, boost, engines, redis, ws.Notifier{}, logger)

	return &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redis,
		Engines:     engines,
		RecommendUC: recommendUC,
		CatalogUC:   catalogUC,
		Logger:      logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
