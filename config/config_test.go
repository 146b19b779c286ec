package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnvFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.App.Port)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, 3000*time.Second, cfg.JWT.Expiry)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TipTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "local", cfg.Model.Backend)
	assert.Equal(t, "heart-model.json", cfg.Model.Topology)
	assert.Equal(t, "hd-model.bin", cfg.Model.Weights)
	assert.True(t, cfg.Model.Cache)
	assert.Equal(t, "none", cfg.Publisher.Driver)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ParsesDurations(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("TIP_CACHE_TTL", "bogus")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TipTTL)
}
