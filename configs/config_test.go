package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.False(t, cfg.DemoMode)
	assert.True(t, cfg.SeedDemo)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("POSTGRES_URI", "postgres://localhost/socialsync")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("SEED_DEMO", "false")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/socialsync", cfg.PostgresURI)
	assert.True(t, cfg.DemoMode)
	assert.False(t, cfg.SeedDemo)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "1")
	assert.True(t, getEnvBool("FLAG", false))

	t.Setenv("FLAG", "0")
	assert.False(t, getEnvBool("FLAG", true))

	t.Setenv("FLAG", "maybe")
	assert.True(t, getEnvBool("FLAG", true))
}
