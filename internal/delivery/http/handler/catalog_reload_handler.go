package handler

import (
	"errors"
	"log"

	"assessment-recommender/internal/delivery/http/dto"
	"assessment-recommender/internal/delivery/http/middleware"
	"assessment-recommender/internal/pkg/response"
	"assessment-recommender/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// reloadWebhookRequest is what the scraper posts after a run. Every field
// is informational; an empty body triggers a plain reload.
type reloadWebhookRequest struct {
	RunID        string `json:"run_id"`
	ScrapedCount int    `json:"scraped_count"`
	CompletedAt  string `json:"completed_at"`
}

type CatalogReloadHandler struct {
	uc     usecase.CatalogUsecase
	logger *log.Logger
}

func NewCatalogReloadHandler(uc usecase.CatalogUsecase, logger *log.Logger) *CatalogReloadHandler {
	return &CatalogReloadHandler{uc: uc, logger: logger}
}

func (h *CatalogReloadHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/catalog/reload", h.HandleReload)
}

func (h *CatalogReloadHandler) HandleReload(c fiber.Ctx) error {
	var req reloadWebhookRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	if req.RunID != "" && h.logger != nil {
		h.logger.Printf("[Reload] webhook run=%s scraped=%d completed_at=%s", req.RunID, req.ScrapedCount, req.CompletedAt)
	}

	res, err := h.uc.Reload(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReloadInProgress):
			return middleware.NewAppError(fiber.StatusConflict, "reload already in progress", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, "success", dto.ReloadResponse{
		Loaded: res.Loaded,
		Source: res.Source,
	})
}
