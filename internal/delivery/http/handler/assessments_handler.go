package handler

import (
	"errors"

	"assessment-recommender/internal/delivery/http/dto"
	"assessment-recommender/internal/delivery/http/middleware"
	"assessment-recommender/internal/domain/assessment"
	"assessment-recommender/internal/pkg/response"
	"assessment-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentsHandler struct {
	uc usecase.CatalogUsecase
}

func NewAssessmentsHandler(uc usecase.CatalogUsecase) *AssessmentsHandler {
	return &AssessmentsHandler{uc: uc}
}

func (h *AssessmentsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/assessments", h.HandleList)
	r.Get("/assessments/types", h.HandleTypes)
}

func (h *AssessmentsHandler) HandleList(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("type"))
	if err != nil {
		return mapCatalogUsecaseError(err)
	}

	out := make([]dto.AssessmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAssessmentResponse(a))
	}

	return response.Success(c, fiber.StatusOK, "success", dto.AssessmentListResponse{
		Assessments: out,
		Count:       len(out),
	})
}

func (h *AssessmentsHandler) HandleTypes(c fiber.Ctx) error {
	types, err := h.uc.Types(c.Context())
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.AssessmentTypesResponse{Types: types})
}

func toAssessmentResponse(a assessment.Assessment) dto.AssessmentResponse {
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	return dto.AssessmentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Type:            string(a.Type),
		Description:     a.Description,
		Skills:          skills,
		DurationMinutes: a.DurationMinutes,
		RemoteAvailable: a.RemoteAvailable,
		AdaptiveSupport: a.AdaptiveSupport,
		Link:            a.Link,
	}
}

func mapCatalogUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnknownType):
		return middleware.NewAppError(fiber.StatusBadRequest, "unknown assessment type", nil, err)
	case errors.Is(err, usecase.ErrEngineNotReady):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "recommendation engine not ready", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalError, nil, err)
	}
}
