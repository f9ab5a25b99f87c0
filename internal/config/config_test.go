package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Catalog.PageSize != 12 {
		t.Errorf("expected default page size 12, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.MaxPrice != 1000 {
		t.Errorf("expected default max price 1000, got %v", cfg.Catalog.MaxPrice)
	}
	if cfg.Session.CookieName != "session_id" {
		t.Errorf("expected default cookie name session_id, got %s", cfg.Session.CookieName)
	}
	if cfg.RateLimit.Enabled {
		t.Errorf("expected rate limiting disabled by default")
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development mode by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CATALOG_PAGE_SIZE", "24")
	t.Setenv("CATALOG_MAX_PRICE", "2500.50")
	t.Setenv("SESSION_MAX_AGE", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Errorf("expected production mode")
	}
	if cfg.Catalog.PageSize != 24 {
		t.Errorf("expected page size 24, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.MaxPrice != 2500.50 {
		t.Errorf("expected max price 2500.50, got %v", cfg.Catalog.MaxPrice)
	}
	if cfg.Session.MaxAge != time.Hour {
		t.Errorf("expected session max age 1h, got %v", cfg.Session.MaxAge)
	}
	if len(cfg.Security.CORSAllowedOrigins) != 2 {
		t.Errorf("expected 2 CORS origins, got %d", len(cfg.Security.CORSAllowedOrigins))
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CATALOG_PAGE_SIZE", "not-a-number")
	t.Setenv("RATE_LIMIT_ENABLED", "not-a-bool")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Catalog.PageSize != 12 {
		t.Errorf("expected fallback page size 12, got %d", cfg.Catalog.PageSize)
	}
	if cfg.RateLimit.Enabled {
		t.Errorf("expected fallback rate limit disabled")
	}
}

func TestValidate_TableDriven(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			Catalog: CatalogConfig{PageSize: 12, MaxPrice: 1000},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"zero page size", func(c *Config) { c.Catalog.PageSize = 0 }, true},
		{"negative max price", func(c *Config) { c.Catalog.MaxPrice = -1 }, true},
		{"rate limit without redis host", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.PerMinute = 100
		}, true},
		{"rate limit without positive limit", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.RedisHost = "localhost"
		}, true},
		{"rate limit fully configured", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.RedisHost = "localhost"
			c.RateLimit.PerMinute = 100
		}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for case %s", tc.name)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
