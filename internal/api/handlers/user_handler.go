package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/dashboard-api/internal/service"
)

type UserHandler struct {
	s service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{s: service}
}

// GetUserInfo returns the seeded account. The password never leaves the
// model's json marshalling.
func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	user, err := h.s.Info(c.Context(), demoUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to get user info",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
