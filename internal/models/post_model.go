package models

import "time"

type Post struct {
	ID            int64      `db:"id" json:"id"`
	UserID        int64      `db:"user_id" json:"userId"`
	Content       string     `db:"content" json:"content"`
	MediaURL      *string    `db:"media_url" json:"mediaUrl"`
	Status        string     `db:"status" json:"status"` // draft, scheduled, published
	ScheduledTime *time.Time `db:"scheduled_time" json:"scheduledTime"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
}

// PostUpdate carries a partial update: nil fields are left unchanged.
type PostUpdate struct {
	Content       *string    `db:"content"`
	MediaURL      *string    `db:"media_url"`
	Status        *string    `db:"status"`
	ScheduledTime *time.Time `db:"scheduled_time"`
}

type PostPlatform struct {
	ID             int64   `db:"id" json:"id"`
	PostID         int64   `db:"post_id" json:"postId"`
	Platform       string  `db:"platform" json:"platform"`
	PlatformPostID *string `db:"platform_post_id" json:"platformPostId"`
	Engagement     int     `db:"engagement" json:"engagement"`
	Likes          int     `db:"likes" json:"likes"`
	Comments       int     `db:"comments" json:"comments"`
	Shares         int     `db:"shares" json:"shares"`
}

type MediaAsset struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	FileName  string    `db:"file_name" json:"fileName"`
	FileType  string    `db:"file_type" json:"fileType"`
	FileSize  int64     `db:"file_size" json:"fileSize"`
	FileURL   string    `db:"file_url" json:"fileUrl"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)
