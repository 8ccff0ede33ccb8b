package handler

import "github.com/gofiber/fiber/v3"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthHandler answers liveness probes with the two-field body the
// service has always returned, envelope-free.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(healthResponse{
		Status:  "ok",
		Message: "API is operational",
	})
}
