package catalog

import (
	"context"

	"assessment-recommender/internal/domain/assessment"
	"assessment-recommender/internal/repository"
)

// Source yields the corpus the recommendation engine is built from. The
// second return value names the backend for logs and reload responses.
type Source interface {
	Load(ctx context.Context) ([]assessment.Assessment, string, error)
}

// FileSource reads the catalog from a JSON file, with the embedded sample
// as fallback when the file does not exist.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) ([]assessment.Assessment, string, error) {
	items, err := Load(s.Path)
	if err != nil {
		return nil, "", err
	}
	return items, "file", nil
}

// RepositorySource reads the catalog from Postgres, where the scraper
// keeps it current.
type RepositorySource struct {
	Repo repository.AssessmentRepository
}

func (s RepositorySource) Load(ctx context.Context) ([]assessment.Assessment, string, error) {
	items, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, "", err
	}
	return items, "postgres", nil
}
