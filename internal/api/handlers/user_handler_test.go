package handlers

import (
	"context"
	"net/http"
	"testing"

	config "github.com/socialsync/dashboard-api/configs"
	"github.com/socialsync/dashboard-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserNotSeeded(t *testing.T) {
	env := setupTestApp(config.Config{})

	resp := env.request(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGetUserOmitsPassword(t *testing.T) {
	env := setupTestApp(config.Config{})

	_, err := env.users.Create(context.Background(), &models.User{
		Username:  "alex_morgan",
		Password:  "password123",
		FirstName: "Alex",
		LastName:  "Morgan",
		Email:     "alex@socialsync.co",
	})
	require.NoError(t, err)

	resp := env.request(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "alex_morgan", body["username"])
	assert.Equal(t, "Alex", body["firstName"])
	assert.NotContains(t, body, "password")
}
