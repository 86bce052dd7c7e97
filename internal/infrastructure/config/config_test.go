package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Auth.LoginDelay != 500*time.Millisecond {
		t.Errorf("expected 500ms login delay, got %v", cfg.Auth.LoginDelay)
	}
	if cfg.Auth.VerifyPasswords {
		t.Errorf("password verification must be off by default")
	}
	if cfg.UserStore != BackendMemory || cfg.SessionStore != BackendMemory {
		t.Errorf("unexpected backends: %s/%s", cfg.UserStore, cfg.SessionStore)
	}
	if cfg.Mongo.Database != "wellness" {
		t.Errorf("unexpected mongo db %q", cfg.Mongo.Database)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":              "production",
		"SESSION_SECRET":   "s3cret",
		"USER_STORE":       "mongo",
		"SESSION_STORE":    "redis",
		"LOGIN_DELAY":      "0s",
		"VERIFY_PASSWORDS": "true",
		"SYNC_WORKERS":     "2",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.LoginDelay != 0 || !cfg.Auth.VerifyPasswords || cfg.Sync.Workers != 2 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"USER_STORE": "postgres",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoad_RequiresSecretOutsideDevelopment(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV": "production",
	}))
	if err == nil {
		t.Fatalf("expected error for missing secret")
	}
}
