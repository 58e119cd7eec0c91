package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.TokenTTL() != time.Hour {
		t.Fatalf("expected default TTL of 1h, got %v", cfg.TokenTTL())
	}
	if cfg.RateLimitMax != 100 || cfg.RateLimitWindow != time.Hour {
		t.Fatalf("unexpected rate limit defaults: %d per %v", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.IsProduction() {
		t.Fatalf("default env must not be production")
	}
}

func TestLoad_TTLOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "120")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL() != 2*time.Minute {
		t.Fatalf("expected 2m TTL, got %v", cfg.TokenTTL())
	}
}
