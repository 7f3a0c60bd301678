package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/dashboard-api/internal/service"
	"github.com/socialsync/dashboard-api/internal/transfer"
)

type PlatformHandler struct {
	s service.PlatformService
}

func NewPlatformHandler(service service.PlatformService) *PlatformHandler {
	return &PlatformHandler{s: service}
}

func (h *PlatformHandler) ListPlatforms(c *fiber.Ctx) error {
	platforms, err := h.s.List(c.Context(), demoUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch connected platforms",
		})
	}

	return c.Status(fiber.StatusOK).JSON(platforms)
}

func (h *PlatformHandler) ConnectPlatform(c *fiber.Ctx) error {
	var pc transfer.PlatformConnection
	if err := c.BodyParser(&pc); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := validate.Struct(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid platform data",
			"errors":  validationErrors(err),
		})
	}

	platform, err := h.s.Connect(c.Context(), demoUserID, &pc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to connect platform",
		})
	}

	return c.Status(fiber.StatusOK).JSON(platform)
}

// DisconnectPlatform flips the connected flag. Disconnecting a platform
// that was never connected succeeds without creating a row.
func (h *PlatformHandler) DisconnectPlatform(c *fiber.Ctx) error {
	var pd transfer.PlatformDisconnection
	if err := c.BodyParser(&pd); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := validate.Struct(&pd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid platform data",
			"errors":  validationErrors(err),
		})
	}

	affected, err := h.s.Disconnect(c.Context(), demoUserID, pd.Platform)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to disconnect platform",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": affected,
	})
}
