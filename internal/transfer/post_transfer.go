package transfer

import (
	"time"

	"github.com/socialsync/dashboard-api/internal/models"
)

type PostCreation struct {
	Content       string     `json:"content" validate:"required"`
	MediaURL      *string    `json:"mediaUrl"`
	Status        string     `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledTime *time.Time `json:"scheduledTime" validate:"required_if=Status scheduled"`
	Platforms     []string   `json:"platforms" validate:"omitempty,dive,oneof=twitter instagram facebook bluesky"`
}

// PostWithPlatforms is a post with its per-platform rows attached, the
// compound shape the list endpoints return.
type PostWithPlatforms struct {
	models.Post
	Platforms []*models.PostPlatform `json:"platforms"`
}
