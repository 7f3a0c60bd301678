package handlers

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/socialsync/dashboard-api/configs"
	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/socialsync/dashboard-api/internal/service"
	"github.com/socialsync/dashboard-api/internal/transfer"
)

type PostHandler struct {
	s   service.PostService
	cfg config.Config
}

func NewPostHandler(service service.PostService, cfg config.Config) *PostHandler {
	return &PostHandler{s: service, cfg: cfg}
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.ListWithPlatforms(c.Context(), demoUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}
	if posts == nil {
		posts = []*transfer.PostWithPlatforms{}
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) ListScheduledPosts(c *fiber.Ctx) error {
	posts, err := h.s.ListScheduledWithPlatforms(c.Context(), demoUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list scheduled posts",
		})
	}
	if posts == nil {
		posts = []*transfer.PostWithPlatforms{}
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	if err := validate.Struct(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post data",
			"errors":  validationErrors(err),
		})
	}

	// Demo mode validates and answers without touching the store.
	if h.cfg.DemoMode {
		return c.Status(fiber.StatusCreated).JSON(h.synthesizePost(&pc))
	}

	post, err := h.s.Create(c.Context(), demoUserID, &pc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
		})
	}

	if h.cfg.DemoMode {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Post deleted",
		})
	}

	deleted, err := h.s.Remove(c.Context(), demoUserID, int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete post",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Post not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted",
	})
}

func (h *PostHandler) synthesizePost(pc *transfer.PostCreation) *models.Post {
	status := pc.Status
	if status == "" {
		status = models.PostStatusDraft
	}

	return &models.Post{
		ID:            rand.Int63n(1000000),
		UserID:        demoUserID,
		Content:       pc.Content,
		MediaURL:      pc.MediaURL,
		Status:        status,
		ScheduledTime: pc.ScheduledTime,
		CreatedAt:     time.Now(),
	}
}
