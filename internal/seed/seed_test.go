package seed

import (
	"context"
	"testing"

	"github.com/socialsync/dashboard-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsDemoData(t *testing.T) {
	store := repository.NewMemoryStore()
	users := repository.NewMemoryUserRepository(store)
	platforms := repository.NewMemoryPlatformRepository(store)
	posts := repository.NewMemoryPostRepository(store)
	postPlatforms := repository.NewMemoryPostPlatformRepository(store)
	analytics := repository.NewMemoryAnalyticsRepository(store)
	ctx := context.Background()

	require.NoError(t, Run(ctx, users, platforms, posts, postPlatforms, analytics))

	user, err := users.GetByUsername(ctx, "alex_morgan")
	require.NoError(t, err)
	require.NotNil(t, user)

	connected, err := platforms.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, connected, 3)

	all, err := posts.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	scheduled, err := posts.ListScheduled(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, scheduled, 2)
	assert.True(t, scheduled[0].ScheduledTime.Before(*scheduled[1].ScheduledTime))

	snapshots, err := analytics.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, snapshots, 3)
}

func TestRunIsIdempotent(t *testing.T) {
	store := repository.NewMemoryStore()
	users := repository.NewMemoryUserRepository(store)
	platforms := repository.NewMemoryPlatformRepository(store)
	posts := repository.NewMemoryPostRepository(store)
	postPlatforms := repository.NewMemoryPostPlatformRepository(store)
	analytics := repository.NewMemoryAnalyticsRepository(store)
	ctx := context.Background()

	require.NoError(t, Run(ctx, users, platforms, posts, postPlatforms, analytics))
	require.NoError(t, Run(ctx, users, platforms, posts, postPlatforms, analytics))

	user, err := users.GetByUsername(ctx, "alex_morgan")
	require.NoError(t, err)
	require.NotNil(t, user)

	all, err := posts.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
