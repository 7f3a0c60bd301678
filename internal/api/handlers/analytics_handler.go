package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/dashboard-api/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.s.Overview(c.Context(), demoUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to get analytics",
		})
	}

	return c.Status(fiber.StatusOK).JSON(overview)
}
