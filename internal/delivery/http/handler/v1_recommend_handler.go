package handler

import (
	"errors"
	"strings"

	"assessment-recommender/internal/delivery/http/dto"
	"assessment-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// v1TopK is fixed: the v1 contract always returns up to ten results.
const v1TopK = 10

// V1RecommendHandler serves the original recommendation wire format:
// bare JSON bodies, not the semantic envelope.
type V1RecommendHandler struct {
	uc usecase.RecommendationUsecase
}

func NewV1RecommendHandler(uc usecase.RecommendationUsecase) *V1RecommendHandler {
	return &V1RecommendHandler{uc: uc}
}

func (h *V1RecommendHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend", h.HandleRecommend)
}

func (h *V1RecommendHandler) HandleRecommend(c fiber.Ctx) error {
	var req dto.V1RecommendRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.V1Error{
			Error:   "Bad request",
			Message: "Job description or query is required",
		})
	}

	query := strings.TrimSpace(req.JobDescription)
	if query == "" {
		query = strings.TrimSpace(req.Query)
	}
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.V1Error{
			Error:   "Bad request",
			Message: "Job description or query is required",
		})
	}

	items, err := h.uc.Recommend(c.Context(), usecase.RecommendParams{Query: query, TopK: v1TopK})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEngineNotReady):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.V1Error{
				Error:   "Service unavailable",
				Message: "recommendation engine not initialized",
			})
		case errors.Is(err, usecase.ErrEmptyQuery):
			return c.Status(fiber.StatusBadRequest).JSON(dto.V1Error{
				Error:   "Bad request",
				Message: "Job description or query is required",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.V1Error{
				Error:   "Internal server error",
				Message: "failed to compute recommendations",
			})
		}
	}

	// Unreachable with a non-empty catalog because of the fallback rule,
	// kept as a guard for the documented 404 contract.
	if len(items) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.V1Error{
			Error:   "No results",
			Message: "No matching assessments found for the given query",
		})
	}

	out := make([]dto.V1Assessment, 0, len(items))
	for _, it := range items {
		out = append(out, toV1Assessment(it))
	}

	return c.Status(fiber.StatusOK).JSON(dto.V1RecommendResponse{
		Success: true,
		Data:    dto.V1RecommendData{Assessments: out, Count: len(out)},
	})
}

func toV1Assessment(it usecase.RecommendedItem) dto.V1Assessment {
	skills := it.Skills
	if skills == nil {
		skills = []string{}
	}
	return dto.V1Assessment{
		Name:            it.Name,
		Type:            it.Type,
		Description:     it.Description,
		MatchScore:      roundScore(it.Score),
		Skills:          skills,
		RemoteAvailable: it.RemoteAvailable,
		DurationMinutes: it.DurationMinutes,
	}
}
