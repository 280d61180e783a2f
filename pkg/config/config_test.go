package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceshare-landing/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "spaceshare-landing", cfg.SignupSource)
	assert.Equal(t, 10, cfg.SubscribeRateLimit)
	assert.Equal(t, time.Minute, cfg.SubscribeRateWindow)
	assert.Equal(t, "web", cfg.WebDir)
	assert.Empty(t, cfg.ZohoListKey)
	assert.Empty(t, cfg.ZohoOAuthToken)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ZOHO_LIST_KEY", "listkey-123")
	t.Setenv("ZOHO_BASE_URL", "https://campaigns.zoho.eu/api/v1.1/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://spaceshare.example,https://www.spaceshare.example")
	t.Setenv("SUBSCRIBE_RATE_WINDOW", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "listkey-123", cfg.ZohoListKey)
	assert.Equal(t, "https://campaigns.zoho.eu/api/v1.1", cfg.ZohoBaseURL, "trailing slash trimmed")
	assert.Equal(t, []string{"https://spaceshare.example", "https://www.spaceshare.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.SubscribeRateWindow)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "not-a-duration")

	_, err := config.Load()
	assert.Error(t, err)
}
