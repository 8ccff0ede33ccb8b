package repository

import (
	"context"
	"fmt"

	"assessment-recommender/internal/database"
	"assessment-recommender/internal/domain/assessment"
)

type AssessmentRepository interface {
	GetAll(ctx context.Context) ([]assessment.Assessment, error)
	UpsertBatch(ctx context.Context, items []assessment.Assessment) (int64, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

// GetAll returns the whole catalog ordered by id, which is the corpus
// order every ranking pass ties back to.
func (r *PostgresAssessmentRepository) GetAll(ctx context.Context) ([]assessment.Assessment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, type, description, skills, duration_minutes, remote_available, adaptive_support, link
		FROM assessments
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessment.Assessment, 0)
	for rows.Next() {
		var a assessment.Assessment
		var typ string
		if err := rows.Scan(
			&a.ID, &a.Name, &typ, &a.Description, &a.Skills,
			&a.DurationMinutes, &a.RemoteAvailable, &a.AdaptiveSupport, &a.Link,
		); err != nil {
			return nil, err
		}
		a.Type, err = assessment.ParseType(typ)
		if err != nil {
			return nil, fmt.Errorf("assessment %s: %w", a.ID, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertBatch writes scraped catalog entries in one transaction,
// replacing existing rows by id. It returns the number of rows touched.
func (r *PostgresAssessmentRepository) UpsertBatch(ctx context.Context, items []assessment.Assessment) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var total int64
	for _, a := range items {
		if err := a.Validate(); err != nil {
			return 0, err
		}
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO assessments
			 (id, name, type, description, skills, duration_minutes, remote_available, adaptive_support, link, scraped_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
			 ON CONFLICT (id) DO UPDATE SET
			   name = EXCLUDED.name,
			   type = EXCLUDED.type,
			   description = EXCLUDED.description,
			   skills = EXCLUDED.skills,
			   duration_minutes = EXCLUDED.duration_minutes,
			   remote_available = EXCLUDED.remote_available,
			   adaptive_support = EXCLUDED.adaptive_support,
			   link = EXCLUDED.link,
			   scraped_at = now(),
			   updated_at = now()`,
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
			return 0, err
		}
		total += affected
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return total, nil
}
