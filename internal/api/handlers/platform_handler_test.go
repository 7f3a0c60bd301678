package handlers

import (
	"net/http"
	"testing"

	config "github.com/socialsync/dashboard-api/configs"
	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectPlatformTwiceKeepsOneRow(t *testing.T) {
	env := setupTestApp(config.Config{})

	resp := env.request(t, http.MethodPost, "/api/platforms", map[string]interface{}{
		"platform":         "twitter",
		"platformUsername": "alex_v1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodPost, "/api/platforms", map[string]interface{}{
		"platform":         "twitter",
		"platformUsername": "alex_v2",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodGet, "/api/platforms", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var platforms []models.ConnectedPlatform
	decodeJSON(t, resp, &platforms)
	require.Len(t, platforms, 1)
	assert.Equal(t, "twitter", platforms[0].Platform)
	assert.Equal(t, "alex_v2", *platforms[0].PlatformUsername)
	assert.True(t, platforms[0].Connected)
	// A mock token is generated when the caller supplies none.
	require.NotNil(t, platforms[0].AccessToken)
	assert.NotEmpty(t, *platforms[0].AccessToken)
}

func TestConnectPlatformRejectsUnknown(t *testing.T) {
	env := setupTestApp(config.Config{})

	resp := env.request(t, http.MethodPost, "/api/platforms", map[string]interface{}{
		"platform": "myspace",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDisconnectPlatform(t *testing.T) {
	env := setupTestApp(config.Config{})

	resp := env.request(t, http.MethodPost, "/api/platforms", map[string]interface{}{
		"platform": "facebook",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.request(t, http.MethodPost, "/api/platforms/disconnect", map[string]interface{}{
		"platform": "facebook",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
	}
	decodeJSON(t, resp, &body)
	assert.True(t, body.Success)

	resp = env.request(t, http.MethodGet, "/api/platforms", nil)
	var platforms []models.ConnectedPlatform
	decodeJSON(t, resp, &platforms)
	require.Len(t, platforms, 1)
	assert.False(t, platforms[0].Connected)
}

func TestDisconnectNeverConnectedPlatform(t *testing.T) {
	env := setupTestApp(config.Config{})

	resp := env.request(t, http.MethodPost, "/api/platforms/disconnect", map[string]interface{}{
		"platform": "bluesky",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
	}
	decodeJSON(t, resp, &body)
	assert.False(t, body.Success)

	resp = env.request(t, http.MethodGet, "/api/platforms", nil)
	var platforms []models.ConnectedPlatform
	decodeJSON(t, resp, &platforms)
	assert.Empty(t, platforms)
}
