package models

import "time"

// Analytics is an append-only per-platform snapshot for a user.
type Analytics struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"userId"`
	Platform        string    `db:"platform" json:"platform"`
	Date            time.Time `db:"date" json:"date"`
	EngagementRate  string    `db:"engagement_rate" json:"engagementRate"`
	FollowerCount   int       `db:"follower_count" json:"followerCount"`
	FollowersGained int       `db:"followers_gained" json:"followersGained"`
	Impressions     int       `db:"impressions" json:"impressions"`
	ProfileViews    int       `db:"profile_views" json:"profileViews"`
}
