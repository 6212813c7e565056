package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// UpstreamConfig describes the external commerce API every request is
// delegated to. The gateway owns no durable state of its own.
type UpstreamConfig struct {
	BaseURL        string        // resolved, see ResolveUpstreamBaseURL
	Timeout        time.Duration // per-request timeout for upstream calls
	ServiceToken   string        // optional bearer token attached to upstream calls
	ForwardCookies bool          // forward admin session cookies upstream
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Production fallback mirrors the deployed commerce API.
const defaultProductionUpstream = "https://nirvana-five-nu.vercel.app"

// Load reads config from environment variables.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Nirvana Admin Gateway"),
			Environment: env,
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        ResolveUpstreamBaseURL(getEnv("UPSTREAM_BASE_URL", ""), env),
			Timeout:        time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
			ServiceToken:   getEnv("UPSTREAM_SERVICE_TOKEN", ""),
			ForwardCookies: getEnvBool("UPSTREAM_FORWARD_COOKIES", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// ResolveUpstreamBaseURL picks the commerce API base URL:
// an explicit override wins, development points at a local API,
// everything else falls back to the production deployment.
func ResolveUpstreamBaseURL(override, env string) string {
	if override != "" {
		return strings.TrimSuffix(override, "/")
	}
	if env == "development" {
		return "http://localhost:5000"
	}
	return defaultProductionUpstream
}

// Validate checks config invariants.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
