package main

import (
	"context"
	"flag"
	"log"
	"time"

	"assessment-recommender/internal/catalog"
	"assessment-recommender/internal/config"
	"assessment-recommender/internal/database/migration"
	dbpostgres "assessment-recommender/internal/database/postgres"
	notify "assessment-recommender/internal/infrastructure/scraper"
	"assessment-recommender/internal/repository"
	"assessment-recommender/internal/scraper"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	pages := flag.Int("pages", 0, "listing pages to walk (overrides SCRAPER_PAGES)")
	workers := flag.Int("workers", 0, "detail fetch workers (overrides SCRAPER_WORKERS)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *pages > 0 {
		cfg.Scraper.Pages = *pages
	}
	if *workers > 0 {
		cfg.Scraper.Workers = *workers
	}

	runID := uuid.NewString()
	log.Printf("[Scraper] run started id=%s url=%s pages=%d workers=%d",
		runID, cfg.Scraper.CatalogURL, cfg.Scraper.Pages, cfg.Scraper.Workers)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	s := scraper.NewCatalogScraper(cfg.Scraper.CatalogURL, cfg.Scraper.Workers, log.Default())
	items, err := s.Scrape(ctx, cfg.Scraper.Pages)
	if err != nil {
		log.Fatalf("scrape failed: %v", err)
	}

	if err := catalog.Save(cfg.Scraper.OutputPath, items); err != nil {
		log.Fatalf("write catalog file: %v", err)
	}

	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("connect db: %v", err)
		}
		defer func() { _ = db.Close() }()

		if cfg.Database.RunMigrations {
			r := migration.Runner{Dir: "migrations"}
			if err := r.Run(ctx, db); err != nil {
				log.Fatalf("migration failed: %v", err)
			}
		}

		repo := repository.NewPostgresAssessmentRepository(db)
		affected, err := repo.UpsertBatch(ctx, items)
		if err != nil {
			log.Fatalf("upsert assessments: %v", err)
		}
		log.Printf("[Scraper] upserted assessments rows=%d", affected)
	}

	if client := notify.NewNotifyClient(cfg.Scraper.NotifyURL, cfg.InternalToken, log.Default()); client != nil {
		nctx, ncancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer ncancel()
		if err := client.CatalogScraped(nctx, runID, len(items)); err != nil {
			log.Printf("[Scraper] reload notify failed: %v", err)
		} else {
			log.Printf("[Scraper] reload notified url=%s", cfg.Scraper.NotifyURL)
		}
	}

	log.Printf("[Scraper] run complete id=%s scraped=%d output=%s", runID, len(items), cfg.Scraper.OutputPath)
}
