package repository

import (
	"context"
	"testing"
	"time"

	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCreateUserAssignsIDs(t *testing.T) {
	store := NewMemoryStore()
	users := NewMemoryUserRepository(store)
	ctx := context.Background()

	first := &models.User{Username: "alex", Email: "alex@example.com"}
	id1, err := users.Create(ctx, first)
	require.NoError(t, err)

	second := &models.User{Username: "sam", Email: "sam@example.com"}
	id2, err := users.Create(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)

	got, err := users.GetByUsername(ctx, "sam")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id2, got.ID)
}

func TestCreateUserUniqueConstraints(t *testing.T) {
	store := NewMemoryStore()
	users := NewMemoryUserRepository(store)
	ctx := context.Background()

	_, err := users.Create(ctx, &models.User{Username: "alex", Email: "alex@example.com"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &models.User{Username: "alex", Email: "other@example.com"})
	assert.True(t, IsUniqueViolation(err))

	_, err = users.Create(ctx, &models.User{Username: "other", Email: "alex@example.com"})
	assert.True(t, IsUniqueViolation(err))
}

func TestConnectPlatformUpsert(t *testing.T) {
	store := NewMemoryStore()
	platforms := NewMemoryPlatformRepository(store)
	ctx := context.Background()

	_, err := platforms.Upsert(ctx, &models.ConnectedPlatform{
		UserID:           1,
		Platform:         models.PlatformTwitter,
		Connected:        true,
		AccessToken:      strPtr("first-token"),
		PlatformUsername: strPtr("alex_v1"),
	})
	require.NoError(t, err)

	second, err := platforms.Upsert(ctx, &models.ConnectedPlatform{
		UserID:           1,
		Platform:         models.PlatformTwitter,
		Connected:        true,
		AccessToken:      strPtr("second-token"),
		PlatformUsername: strPtr("alex_v2"),
	})
	require.NoError(t, err)

	rows, err := platforms.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, "second-token", *rows[0].AccessToken)
	assert.Equal(t, "alex_v2", *rows[0].PlatformUsername)
}

func TestListPlatformsScopedToUser(t *testing.T) {
	store := NewMemoryStore()
	platforms := NewMemoryPlatformRepository(store)
	ctx := context.Background()

	_, err := platforms.Upsert(ctx, &models.ConnectedPlatform{UserID: 1, Platform: models.PlatformTwitter, Connected: true})
	require.NoError(t, err)
	_, err = platforms.Upsert(ctx, &models.ConnectedPlatform{UserID: 2, Platform: models.PlatformBluesky, Connected: true})
	require.NoError(t, err)

	rows, err := platforms.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].UserID)
	assert.Equal(t, models.PlatformTwitter, rows[0].Platform)
}

func TestDisconnectPlatform(t *testing.T) {
	store := NewMemoryStore()
	platforms := NewMemoryPlatformRepository(store)
	ctx := context.Background()

	_, err := platforms.Upsert(ctx, &models.ConnectedPlatform{UserID: 1, Platform: models.PlatformFacebook, Connected: true, AccessToken: strPtr("tok")})
	require.NoError(t, err)

	affected, err := platforms.Disconnect(ctx, 1, models.PlatformFacebook)
	require.NoError(t, err)
	assert.True(t, affected)

	rows, err := platforms.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Connected)
	// Row and tokens survive a disconnect.
	assert.Equal(t, "tok", *rows[0].AccessToken)
}

func TestDisconnectUnknownPlatformIsNoOp(t *testing.T) {
	store := NewMemoryStore()
	platforms := NewMemoryPlatformRepository(store)
	ctx := context.Background()

	affected, err := platforms.Disconnect(ctx, 1, models.PlatformBluesky)
	require.NoError(t, err)
	assert.False(t, affected)

	rows, err := platforms.ListByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPostRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	posts := NewMemoryPostRepository(store)
	ctx := context.Background()

	post := &models.Post{
		UserID:   1,
		Content:  "Hello world",
		MediaURL: strPtr("https://example.com/pic.png"),
		Status:   models.PostStatusPublished,
	}
	id, err := posts.Create(ctx, nil, post)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.False(t, post.CreatedAt.IsZero())

	got, err := posts.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, post.Content, got.Content)
	assert.Equal(t, *post.MediaURL, *got.MediaURL)
	assert.Equal(t, post.Status, got.Status)
	assert.True(t, got.CreatedAt.Equal(post.CreatedAt))
}

func TestGetPostByIDNotFound(t *testing.T) {
	store := NewMemoryStore()
	posts := NewMemoryPostRepository(store)

	got, err := posts.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListPostsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	posts := NewMemoryPostRepository(store)
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		_, err := posts.Create(ctx, nil, &models.Post{UserID: 1, Content: content, Status: models.PostStatusPublished})
		require.NoError(t, err)
	}

	got, err := posts.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Content)
	assert.Equal(t, "second", got[1].Content)
	assert.Equal(t, "first", got[2].Content)
}

func TestListScheduledOrdering(t *testing.T) {
	store := NewMemoryStore()
	posts := NewMemoryPostRepository(store)
	ctx := context.Background()
	now := time.Now()

	_, err := posts.Create(ctx, nil, &models.Post{UserID: 1, Content: "later", Status: models.PostStatusScheduled, ScheduledTime: timePtr(now.Add(2 * time.Hour))})
	require.NoError(t, err)
	_, err = posts.Create(ctx, nil, &models.Post{UserID: 1, Content: "sooner", Status: models.PostStatusScheduled, ScheduledTime: timePtr(now.Add(time.Hour))})
	require.NoError(t, err)
	_, err = posts.Create(ctx, nil, &models.Post{UserID: 1, Content: "no time", Status: models.PostStatusScheduled})
	require.NoError(t, err)
	_, err = posts.Create(ctx, nil, &models.Post{UserID: 1, Content: "draft", Status: models.PostStatusDraft})
	require.NoError(t, err)

	got, err := posts.ListScheduled(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "sooner", got[0].Content)
	assert.Equal(t, "later", got[1].Content)
	assert.Equal(t, "no time", got[2].Content)
}

func TestUpdatePostPartial(t *testing.T) {
	store := NewMemoryStore()
	posts := NewMemoryPostRepository(store)
	ctx := context.Background()

	when := time.Now().Add(3 * time.Hour)
	post := &models.Post{
		UserID:        1,
		Content:       "original",
		MediaURL:      strPtr("https://example.com/pic.png"),
		Status:        models.PostStatusScheduled,
		ScheduledTime: timePtr(when),
	}
	id, err := posts.Create(ctx, nil, post)
	require.NoError(t, err)

	updated, err := posts.Update(ctx, id, &models.PostUpdate{Status: strPtr(models.PostStatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, models.PostStatusPublished, updated.Status)
	assert.Equal(t, "original", updated.Content)
	assert.Equal(t, "https://example.com/pic.png", *updated.MediaURL)
	require.NotNil(t, updated.ScheduledTime)
	assert.True(t, updated.ScheduledTime.Equal(when))
	assert.True(t, updated.CreatedAt.Equal(post.CreatedAt))
}

func TestUpdatePostNotFound(t *testing.T) {
	store := NewMemoryStore()
	posts := NewMemoryPostRepository(store)

	updated, err := posts.Update(context.Background(), 99, &models.PostUpdate{Content: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRemovePostPlatformsByPostID(t *testing.T) {
	store := NewMemoryStore()
	postPlatforms := NewMemoryPostPlatformRepository(store)
	ctx := context.Background()

	_, err := postPlatforms.Create(ctx, nil, &models.PostPlatform{PostID: 1, Platform: models.PlatformTwitter})
	require.NoError(t, err)
	_, err = postPlatforms.Create(ctx, nil, &models.PostPlatform{PostID: 1, Platform: models.PlatformBluesky})
	require.NoError(t, err)
	_, err = postPlatforms.Create(ctx, nil, &models.PostPlatform{PostID: 2, Platform: models.PlatformTwitter})
	require.NoError(t, err)

	require.NoError(t, postPlatforms.RemoveByPostID(ctx, nil, 1))

	gone, err := postPlatforms.ListByPostID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := postPlatforms.ListByPostID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestAnalyticsScopedToUser(t *testing.T) {
	store := NewMemoryStore()
	analytics := NewMemoryAnalyticsRepository(store)
	ctx := context.Background()

	_, err := analytics.Create(ctx, &models.Analytics{UserID: 1, Platform: models.PlatformTwitter, Date: time.Now(), FollowersGained: 10})
	require.NoError(t, err)
	_, err = analytics.Create(ctx, &models.Analytics{UserID: 2, Platform: models.PlatformTwitter, Date: time.Now(), FollowersGained: 20})
	require.NoError(t, err)

	rows, err := analytics.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 10, rows[0].FollowersGained)
}
