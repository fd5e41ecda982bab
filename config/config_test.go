package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SCOPE4_SERVER_PORT")
		os.Unsetenv("SCOPE4_SERVER_ENVIRONMENT")
		os.Unsetenv("SCOPE4_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("SCOPE4_SERVER_API_TOKEN")
		os.Unsetenv("SCOPE4_API_API_KEY")
		os.Unsetenv("SCOPE4_API_BASE_URL")
		os.Unsetenv("SCOPE4_CACHE_TYPE")
		os.Unsetenv("SCOPE4_CACHE_REDIS_URL")
		os.Unsetenv("SCOPE4_CACHE_KEY_PREFIX")
		os.Unsetenv("SCOPE4_CACHE_TTL")
		os.Unsetenv("SCOPE4_RATELIMIT_UPSTREAM_RPS")
		os.Unsetenv("SCOPE4_RATELIMIT_UPSTREAM_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("SCOPE4_API_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.API.BaseURL != "https://api.scope4.io" {
			t.Errorf("API.BaseURL = %s, want https://api.scope4.io", cfg.API.BaseURL)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 2*time.Minute {
			t.Errorf("Cache.TTL = %v, want 2m", cfg.Cache.TTL)
		}
		if cfg.Cache.KeyPrefix != "scope4:sheets" {
			t.Errorf("Cache.KeyPrefix = %s, want scope4:sheets", cfg.Cache.KeyPrefix)
		}
		if cfg.RateLimit.UpstreamRPS != 5 {
			t.Errorf("RateLimit.UpstreamRPS = %v, want 5", cfg.RateLimit.UpstreamRPS)
		}
		if cfg.RateLimit.UpstreamBurst != 30 {
			t.Errorf("RateLimit.UpstreamBurst = %d, want 30", cfg.RateLimit.UpstreamBurst)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SCOPE4_SERVER_PORT", "9090")
		os.Setenv("SCOPE4_SERVER_ENVIRONMENT", "production")
		os.Setenv("SCOPE4_SERVER_ALLOWED_ORIGINS", "https://*.googleusercontent.com,http://localhost:3000")
		os.Setenv("SCOPE4_SERVER_API_TOKEN", "inbound-token")
		os.Setenv("SCOPE4_API_API_KEY", "custom-api-key")
		os.Setenv("SCOPE4_API_BASE_URL", "https://staging.scope4.io")
		os.Setenv("SCOPE4_CACHE_TYPE", "redis")
		os.Setenv("SCOPE4_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("SCOPE4_CACHE_KEY_PREFIX", "staging:sheets")
		os.Setenv("SCOPE4_CACHE_TTL", "90s")
		os.Setenv("SCOPE4_RATELIMIT_UPSTREAM_RPS", "2.5")
		os.Setenv("SCOPE4_RATELIMIT_UPSTREAM_BURST", "10")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 2 {
			t.Errorf("Server.AllowedOrigins = %v, want two entries", cfg.Server.AllowedOrigins)
		}
		if cfg.Server.APIToken != "inbound-token" {
			t.Errorf("Server.APIToken = %s, want inbound-token", cfg.Server.APIToken)
		}
		if cfg.API.APIKey != "custom-api-key" {
			t.Errorf("API.APIKey = %s, want custom-api-key", cfg.API.APIKey)
		}
		if cfg.API.BaseURL != "https://staging.scope4.io" {
			t.Errorf("API.BaseURL = %s, want https://staging.scope4.io", cfg.API.BaseURL)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.KeyPrefix != "staging:sheets" {
			t.Errorf("Cache.KeyPrefix = %s, want staging:sheets", cfg.Cache.KeyPrefix)
		}
		if cfg.Cache.TTL != 90*time.Second {
			t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
		}
		if cfg.RateLimit.UpstreamRPS != 2.5 {
			t.Errorf("RateLimit.UpstreamRPS = %v, want 2.5", cfg.RateLimit.UpstreamRPS)
		}
		if cfg.RateLimit.UpstreamBurst != 10 {
			t.Errorf("RateLimit.UpstreamBurst = %d, want 10", cfg.RateLimit.UpstreamBurst)
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
		if err != nil && err.Error() != "invalid configuration: Scope4 API key is required (set SCOPE4_API_API_KEY)" {
			t.Errorf("Load() error = %v, want 'Scope4 API key is required'", err)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SCOPE4_API_API_KEY", "test-key")
		os.Setenv("SCOPE4_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SCOPE4_API_API_KEY", "test-key")
		os.Setenv("SCOPE4_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("validates successfully with all required fields", func(t *testing.T) {
		cfg := &Config{
			API: APIConfig{
				APIKey:  "test-key",
				BaseURL: "https://api.scope4.io",
			},
			Cache: CacheConfig{
				Type: "memory",
			},
		}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when API key is empty", func(t *testing.T) {
		cfg := &Config{
			API: APIConfig{
				APIKey: "",
			},
			Cache: CacheConfig{
				Type: "memory",
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for empty API key")
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := &Config{
			API: APIConfig{
				APIKey: "test-key",
			},
			Cache: CacheConfig{
				Type: "invalid-type",
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("validates redis cache type with URL", func(t *testing.T) {
		cfg := &Config{
			API: APIConfig{
				APIKey: "test-key",
			},
			Cache: CacheConfig{
				Type:     "redis",
				RedisURL: "redis://localhost:6379",
			},
		}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil for valid redis config", err)
		}
	})

	t.Run("fails for redis cache without URL", func(t *testing.T) {
		cfg := &Config{
			API: APIConfig{
				APIKey: "test-key",
			},
			Cache: CacheConfig{
				Type:     "redis",
				RedisURL: "",
			},
		}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for redis without URL")
		}
	})
}
