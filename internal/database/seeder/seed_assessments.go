package seeder

import (
	"context"
	"fmt"

	"assessment-recommender/internal/catalog"
	"assessment-recommender/internal/database"
)

// AssessmentsSeeder inserts the embedded sample catalog so a fresh
// database can serve recommendations before the scraper has run.
type AssessmentsSeeder struct{}

func (AssessmentsSeeder) Name() string { return "assessments" }

func (AssessmentsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "assessments",
		"id", "name", "type", "description", "skills",
		"duration_minutes", "remote_available", "adaptive_support", "link",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, a := range catalog.Sample() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO assessments
			 (id, name, type, description, skills, duration_minutes, remote_available, adaptive_support, link)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (id) DO NOTHING`,
			a.ID,
			a.Name,
			string(a.Type),
			a.Description,
			a.Skills,
			a.DurationMinutes,
			a.RemoteAvailable,
			a.AdaptiveSupport,
			a.Link,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
