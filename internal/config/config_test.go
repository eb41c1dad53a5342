package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("http.addr = %q, want %q", cfg.HTTP.Addr, ":8080")
	}
	if cfg.Storage.Driver != StorageMemory {
		t.Errorf("storage.driver = %q, want %q", cfg.Storage.Driver, StorageMemory)
	}
	if cfg.Auth.TokenTTL != 15*time.Minute {
		t.Errorf("auth.token_ttl = %v, want 15m", cfg.Auth.TokenTTL)
	}
	if cfg.RateLimit.Burst != 3 {
		t.Errorf("ratelimit.burst = %d, want 3", cfg.RateLimit.Burst)
	}
}

func TestFromViperValidation(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
	}{
		{"unknown driver", map[string]any{"storage.driver": "mongo"}},
		{"postgres without url", map[string]any{"storage.driver": "postgres"}},
		{"empty secret", map[string]any{"auth.jwt_secret": ""}},
		{"zero rps", map[string]any{"ratelimit.rps": 0}},
		{"bad hour", map[string]any{"digest.hour": 24}},
		{"digest without smtp", map[string]any{"digest.enabled": true}},
		{"default secret with redis", map[string]any{"storage.driver": "redis"}},
		{"default secret with postgres", map[string]any{"storage.driver": "postgres", "database.url": "postgres://localhost/inventory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			if _, err := FromViper(v); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "storage:\n  driver: redis\nauth:\n  jwt_secret: file-secret\nredis:\n  addr: localhost:6380\nratelimit:\n  burst: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INVENTORY_RATELIMIT_BURST", "20")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Driver != StorageRedis {
		t.Errorf("storage.driver = %q, want redis", cfg.Storage.Driver)
	}
	if cfg.Redis.Addr != "localhost:6380" {
		t.Errorf("redis.addr = %q", cfg.Redis.Addr)
	}
	if cfg.RateLimit.Burst != 20 {
		t.Errorf("env should override file: burst = %d, want 20", cfg.RateLimit.Burst)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestFromViperCustomSecretWithPersistentStorage(t *testing.T) {
	v := New()
	v.Set("storage.driver", "postgres")
	v.Set("database.url", "postgres://localhost/inventory")
	v.Set("auth.jwt_secret", "a-real-secret")

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.JWTSecret != "a-real-secret" {
		t.Errorf("auth.jwt_secret = %q", cfg.Auth.JWTSecret)
	}
}
