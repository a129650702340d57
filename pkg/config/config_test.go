package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/palette"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("cache backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Errorf("store backend = %q, want memory", cfg.Store.Backend)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[defaults]
rounds = 6
pitch = "proportional"

[server]
addr = ":9090"

[cache]
backend = "redis"

[cache.redis]
addr = "redis.internal:6379"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Rounds != 6 || cfg.Defaults.Pitch != "proportional" {
		t.Errorf("defaults not applied: %+v", cfg.Defaults)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.Redis.Addr != "redis.internal:6379" {
		t.Errorf("cache not applied: %+v", cfg.Cache)
	}
	// Untouched keys keep their defaults.
	if cfg.Defaults.Palette != palette.DefaultName {
		t.Errorf("Palette = %q, want %q", cfg.Defaults.Palette, palette.DefaultName)
	}
}

func TestLoadRejectsBadBackends(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad cache backend", "[cache]\nbackend = \"memcached\"\n"},
		{"bad store backend", "[store]\nbackend = \"dynamo\"\n"},
		{"mongo without uri", "[store]\nbackend = \"mongo\"\n"},
		{"palette without colors", "[[palettes]]\nname = \"empty\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want invalid-config", err)
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "rounds = = 3"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want invalid-config", err)
	}
}

func TestRegisterPalettes(t *testing.T) {
	path := writeConfig(t, `
[[palettes]]
name = "config-test-palette"
colors = ["#111111", "#222222"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := cfg.RegisterPalettes(); err != nil {
		t.Fatalf("RegisterPalettes: %v", err)
	}

	p, err := palette.ByName("config-test-palette")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if len(p.Colors) != 2 {
		t.Errorf("colors = %d, want 2", len(p.Colors))
	}
}
