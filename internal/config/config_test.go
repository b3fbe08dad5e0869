package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SEARCH_DELAY", "")
	t.Setenv("ALLOW_ORIGINS", " https://a.example , ,https://b.example ")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.SearchDelay != 1500*time.Millisecond {
		t.Fatalf("expected default search delay, got %s", cfg.SearchDelay)
	}
	if cfg.ListingPath != "/guides" {
		t.Fatalf("expected default listing path, got %q", cfg.ListingPath)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.AllowOrigins)
	}
	if cfg.AssetsEnabled() || cfg.MailEnabled() {
		t.Fatalf("expected optional integrations disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SEARCH_DELAY", "250ms")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("NOTIFY_RATE_PER_MIN", "12")

	cfg := Load()
	if cfg.SearchDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.SearchDelay)
	}
	if cfg.SessionTTL != 30*24*time.Hour {
		t.Fatalf("expected fallback ttl for invalid value, got %s", cfg.SessionTTL)
	}
	if cfg.NotifyRatePerMin != 12 {
		t.Fatalf("expected notify rate 12, got %d", cfg.NotifyRatePerMin)
	}
}

func TestLoadPanicsWithoutSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing SESSION_SECRET")
		}
	}()
	Load()
}
