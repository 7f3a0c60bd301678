package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/socialsync/dashboard-api/internal/repository"
)

const demoUsername = "alex_morgan"

// Run populates the store with the demo account, its connected
// platforms, a handful of published and scheduled posts, and analytics
// snapshots. Idempotent: a store that already has the demo user is left
// untouched.
func Run(
	ctx context.Context,
	users repository.UserRepository,
	platforms repository.PlatformRepository,
	posts repository.PostRepository,
	postPlatforms repository.PostPlatformRepository,
	analytics repository.AnalyticsRepository,
) error {
	existing, err := users.GetByUsername(ctx, demoUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		slog.Info("store already seeded, skipping")
		return nil
	}

	user := models.User{
		Username:     demoUsername,
		Password:     "password123",
		FirstName:    "Alex",
		LastName:     "Morgan",
		Email:        "alex@socialsync.co",
		ProfileImage: strPtr("https://i.pravatar.cc/150?img=23"),
	}
	userID, err := users.Create(ctx, &user)
	if err != nil {
		return fmt.Errorf("error seeding user: %w", err)
	}
	slog.Info("created demo user", "username", user.Username)

	seededPlatforms := []string{models.PlatformTwitter, models.PlatformInstagram, models.PlatformFacebook}
	for _, platform := range seededPlatforms {
		_, err := platforms.Upsert(ctx, &models.ConnectedPlatform{
			UserID:           userID,
			Platform:         platform,
			Connected:        true,
			AccessToken:      strPtr("mock-token"),
			RefreshToken:     strPtr("mock-refresh-token"),
			PlatformUsername: strPtr(demoUsername + "_" + platform),
		})
		if err != nil {
			return fmt.Errorf("error seeding platform %s: %w", platform, err)
		}
	}

	published := []struct {
		content  string
		mediaURL *string
		platform string
		metrics  models.PostPlatform
	}{
		{
			content:  "Thank you to everyone who attended our customer meetup yesterday! Great conversations and insights shared.",
			platform: models.PlatformFacebook,
			metrics:  models.PostPlatform{PlatformPostID: strPtr("13579"), Likes: 87, Comments: 14, Shares: 9, Engagement: 110},
		},
		{
			content:  "Behind the scenes at our latest photoshoot! #BTS #ComingSoon",
			mediaURL: strPtr("https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=500&h=500"),
			platform: models.PlatformInstagram,
			metrics:  models.PostPlatform{PlatformPostID: strPtr("67890"), Likes: 243, Comments: 18, Shares: 7, Engagement: 268},
		},
		{
			content:  "Exciting news! Our new product line is launching next week. Stay tuned for updates.",
			platform: models.PlatformTwitter,
			metrics:  models.PostPlatform{PlatformPostID: strPtr("12345"), Likes: 128, Comments: 29, Shares: 24, Engagement: 181},
		},
	}

	for _, p := range published {
		post := models.Post{
			UserID:   userID,
			Content:  p.content,
			MediaURL: p.mediaURL,
			Status:   models.PostStatusPublished,
		}
		if _, err := posts.Create(ctx, nil, &post); err != nil {
			return fmt.Errorf("error seeding post: %w", err)
		}

		metrics := p.metrics
		metrics.PostID = post.ID
		metrics.Platform = p.platform
		if _, err := postPlatforms.Create(ctx, nil, &metrics); err != nil {
			return fmt.Errorf("error seeding post metrics: %w", err)
		}
	}

	scheduled := []struct {
		content  string
		platform string
		when     time.Time
	}{
		{
			content:  "Our new product launch is coming next week! Stay tuned for exciting announcements. #ProductLaunch",
			platform: models.PlatformTwitter,
			when:     atHour(time.Now().AddDate(0, 0, 1), 14, 30),
		},
		{
			content:  "Behind the scenes at our new photo shoot! #BTS #ComingSoon",
			platform: models.PlatformInstagram,
			when:     atHour(time.Now().AddDate(0, 0, 2), 16, 45),
		},
	}

	for _, p := range scheduled {
		when := p.when
		post := models.Post{
			UserID:        userID,
			Content:       p.content,
			Status:        models.PostStatusScheduled,
			ScheduledTime: &when,
		}
		if _, err := posts.Create(ctx, nil, &post); err != nil {
			return fmt.Errorf("error seeding scheduled post: %w", err)
		}

		pp := models.PostPlatform{PostID: post.ID, Platform: p.platform}
		if _, err := postPlatforms.Create(ctx, nil, &pp); err != nil {
			return fmt.Errorf("error seeding post platform: %w", err)
		}
	}

	snapshots := map[string]models.Analytics{
		models.PlatformTwitter:   {EngagementRate: "4.7%", FollowerCount: 8530, FollowersGained: 347, Impressions: 28500, ProfileViews: 1240},
		models.PlatformInstagram: {EngagementRate: "3.9%", FollowerCount: 12450, FollowersGained: 256, Impressions: 32400, ProfileViews: 2350},
		models.PlatformFacebook:  {EngagementRate: "2.5%", FollowerCount: 5280, FollowersGained: 244, Impressions: 18900, ProfileViews: 980},
	}

	for platform, snap := range snapshots {
		snap.UserID = userID
		snap.Platform = platform
		snap.Date = time.Now()
		if _, err := analytics.Create(ctx, &snap); err != nil {
			return fmt.Errorf("error seeding analytics for %s: %w", platform, err)
		}
	}

	slog.Info("store seeded")
	return nil
}

func atHour(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

func strPtr(s string) *string {
	return &s
}
