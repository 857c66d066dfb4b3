package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment represents the deployment environment of the storefront.
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// ParseEnvironment falls back to Development for unknown values.
func ParseEnvironment(v string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}

// IsProduction reports whether the environment corresponds to production.
func (e Environment) IsProduction() bool {
	return e == Production
}

type Config struct {
	Port int    `envconfig:"PORT" default:"8080"`
	Env  string `envconfig:"APP_ENV" default:"development"`

	// Remote product/auth API
	UpstreamURL     string        `envconfig:"UPSTREAM_URL" default:"http://localhost:5000"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`

	// Canonical origin used in shared product links.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`

	// Nested keys are prefixed: SESSION_SECRET, SESSION_COOKIE_SECURE, REDIS_URL...
	Session SessionConfig
	Redis   RedisConfig

	InquiryPhone string   `envconfig:"INQUIRY_PHONE" default:"923045335175"`
	CORSOrigins  []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
}

type SessionConfig struct {
	// 32 bytes of key material; shorter secrets are stretched by the session package.
	Secret       string        `required:"true"`
	CookieSecure bool          `split_words:"true" default:"false"`
	MaxAge       time.Duration `split_words:"true" default:"168h"`
}

type RedisConfig struct {
	// Empty disables the logout revocation list.
	URL         string
	DialTimeout time.Duration `split_words:"true" default:"5s"`
}

// Environment returns the parsed APP_ENV value.
func (c Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment config: %w", err)
	}
	cfg.UpstreamURL = strings.TrimRight(cfg.UpstreamURL, "/")
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return cfg, nil
}
