package seeder

import (
	"context"

	"assessment-recommender/internal/database"
)

// Seeder populates one table with its starter data. Seeders must be
// idempotent; the runner may execute them on every boot.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
