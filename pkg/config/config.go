package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration values.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Zoho Campaigns credentials. The list key identifies the mailing
	// list; the OAuth token is optional and omitted from requests when
	// empty.
	ZohoListKey    string `envconfig:"ZOHO_LIST_KEY"`
	ZohoOAuthToken string `envconfig:"ZOHO_OAUTH_TOKEN"`
	ZohoBaseURL    string `envconfig:"ZOHO_BASE_URL"`

	// SignupSource tags outbound subscriptions with where they came from.
	SignupSource string `envconfig:"SIGNUP_SOURCE" default:"spaceshare-landing"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	SubscribeRateLimit  int           `envconfig:"SUBSCRIBE_RATE_LIMIT" default:"10"`
	SubscribeRateWindow time.Duration `envconfig:"SUBSCRIBE_RATE_WINDOW" default:"1m"`

	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`

	// WebDir is the root of the landing templates and static assets.
	WebDir string `envconfig:"WEB_DIR" default:"web"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.ZohoBaseURL = strings.TrimSuffix(cfg.ZohoBaseURL, "/")
	return &cfg, nil
}
