package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	config "github.com/socialsync/dashboard-api/configs"
	"github.com/socialsync/dashboard-api/internal/repository"
	"github.com/socialsync/dashboard-api/internal/service"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app   *fiber.App
	store *repository.MemoryStore

	users         repository.UserRepository
	platforms     repository.PlatformRepository
	posts         repository.PostRepository
	postPlatforms repository.PostPlatformRepository
	analytics     repository.AnalyticsRepository
}

// setupTestApp wires the memory store through services and handlers the
// same way cmd/server does.
func setupTestApp(cfg config.Config) *testEnv {
	store := repository.NewMemoryStore()
	env := &testEnv{
		app:           fiber.New(),
		store:         store,
		users:         repository.NewMemoryUserRepository(store),
		platforms:     repository.NewMemoryPlatformRepository(store),
		posts:         repository.NewMemoryPostRepository(store),
		postPlatforms: repository.NewMemoryPostPlatformRepository(store),
		analytics:     repository.NewMemoryAnalyticsRepository(store),
	}

	api := env.app.Group("/api")

	user := NewUserHandler(service.NewUserService(env.users))
	api.Get("/user", user.GetUserInfo)

	platform := NewPlatformHandler(service.NewPlatformService(env.platforms))
	api.Get("/platforms", platform.ListPlatforms)
	api.Post("/platforms", platform.ConnectPlatform)
	api.Post("/platforms/disconnect", platform.DisconnectPlatform)

	post := NewPostHandler(service.NewPostService(nil, env.posts, env.postPlatforms), cfg)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/scheduled", post.ListScheduledPosts)
	api.Post("/posts", post.CreatePost)
	api.Delete("/posts/:id", post.RemovePost)

	analytics := NewAnalyticsHandler(service.NewAnalyticsService(env.analytics))
	api.Get("/analytics", analytics.GetOverview)

	return env
}

func (e *testEnv) request(t *testing.T, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
