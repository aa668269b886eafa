package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PORT", "STATIC_DIR", "REDIS_URL", "RATE_LIMIT", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "10000" {
		t.Errorf("ServerPort = %s, want 10000", cfg.ServerPort)
	}
	if cfg.StaticDir != "public" {
		t.Errorf("StaticDir = %s, want public", cfg.StaticDir)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %s, want empty", cfg.RedisURL)
	}
	if cfg.RateLimit != 30 {
		t.Errorf("RateLimit = %d, want 30", cfg.RateLimit)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %s, want development", cfg.Env)
	}
	if cfg.DBUrl == "" {
		t.Error("DBUrl default missing")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	if cfg.ServerPort != "8081" {
		t.Errorf("ServerPort = %s, want 8081", cfg.ServerPort)
	}
	if cfg.DBUrl != "postgres://x" {
		t.Errorf("DBUrl = %s, want postgres://x", cfg.DBUrl)
	}
	if cfg.RateLimit != 5 {
		t.Errorf("RateLimit = %d, want 5", cfg.RateLimit)
	}
	if cfg.Addr() != ":8081" {
		t.Errorf("Addr() = %s, want :8081", cfg.Addr())
	}
}

func TestLoadBadRateLimitFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "abc")

	if cfg := Load(); cfg.RateLimit != 30 {
		t.Errorf("RateLimit = %d, want 30", cfg.RateLimit)
	}

	t.Setenv("RATE_LIMIT", "-1")

	if cfg := Load(); cfg.RateLimit != 30 {
		t.Errorf("RateLimit = %d, want 30", cfg.RateLimit)
	}
}
