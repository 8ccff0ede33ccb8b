package handler

import (
	"errors"
	"math"

	"assessment-recommender/internal/delivery/http/dto"
	"assessment-recommender/internal/delivery/http/middleware"
	"assessment-recommender/internal/pkg/response"
	"assessment-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendHandler(uc usecase.RecommendationUsecase) *RecommendHandler {
	return &RecommendHandler{uc: uc}
}

func (h *RecommendHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend", h.HandleRecommend)
}

func (h *RecommendHandler) HandleRecommend(c fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.Recommend(c.Context(), usecase.RecommendParams{
		Query:              req.JobDescription,
		TestType:           req.Filters.TestType,
		RemoteOnly:         req.Filters.RemoteAvailable,
		AdaptiveOnly:       req.Filters.AdaptiveTesting,
		MaxDurationMinutes: req.Filters.MaxDurationMinutes,
		TopK:               req.TopK,
	})
	if err != nil {
		return mapRecommendUsecaseError(err)
	}

	out := make([]dto.RecommendationItem, 0, len(items))
	for _, it := range items {
		out = append(out, toRecommendationItem(it))
	}

	return response.Success(c, fiber.StatusOK, "success", dto.RecommendResponse{
		Recommendations: out,
		Count:           len(out),
	})
}

func toRecommendationItem(it usecase.RecommendedItem) dto.RecommendationItem {
	skills := it.Skills
	if skills == nil {
		skills = []string{}
	}
	return dto.RecommendationItem{
		ID:              it.ID,
		Name:            it.Name,
		Type:            it.Type,
		Description:     it.Description,
		Skills:          skills,
		DurationMinutes: it.DurationMinutes,
		RemoteAvailable: it.RemoteAvailable,
		AdaptiveSupport: it.AdaptiveSupport,
		Link:            it.Link,
		Score:           roundScore(it.Score),
	}
}

// roundScore trims scores to four decimals for the wire.
func roundScore(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func mapRecommendUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrEmptyQuery):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job description is required", nil, err)
	case errors.Is(err, usecase.ErrEngineNotReady):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "recommendation engine not ready", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalError, nil, err)
	}
}
