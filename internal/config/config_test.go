package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Engine.MinTextRunes != 10 {
		t.Errorf("Engine.MinTextRunes: got %d, want 10", cfg.Engine.MinTextRunes)
	}
	if cfg.Engine.MaxInputRunes != 20000 {
		t.Errorf("Engine.MaxInputRunes: got %d, want 20000", cfg.Engine.MaxInputRunes)
	}
	if cfg.Engine.Workers != 4 {
		t.Errorf("Engine.Workers: got %d, want 4", cfg.Engine.Workers)
	}
	if cfg.Analysis.CacheTTL != 300 {
		t.Errorf("Analysis.CacheTTL: got %d, want 300", cfg.Analysis.CacheTTL)
	}
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host: got %q, want %q", cfg.API.Host, "0.0.0.0")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("API.CORSOrigins: got %v", cfg.API.CORSOrigins)
	}
	if cfg.API.MaxBodyBytes != 1<<20 {
		t.Errorf("API.MaxBodyBytes: got %d, want %d", cfg.API.MaxBodyBytes, 1<<20)
	}
	if cfg.API.MaxBatch != 100 {
		t.Errorf("API.MaxBatch: got %d, want 100", cfg.API.MaxBatch)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
engine:
  min_text_runes: 5
  workers: 2
analysis:
  cache_ttl: 0
api:
  port: 9090
  max_batch: 10
  cors_origins:
    - "https://ads.example.com"
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Engine.MinTextRunes != 5 {
		t.Errorf("Engine.MinTextRunes: got %d, want 5", cfg.Engine.MinTextRunes)
	}
	if cfg.Engine.Workers != 2 {
		t.Errorf("Engine.Workers: got %d, want 2", cfg.Engine.Workers)
	}
	if cfg.Engine.MaxInputRunes != 20000 {
		t.Errorf("Engine.MaxInputRunes should keep its default, got %d", cfg.Engine.MaxInputRunes)
	}
	if cfg.Analysis.CacheTTL != 0 {
		t.Errorf("Analysis.CacheTTL: got %d, want 0", cfg.Analysis.CacheTTL)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
	if cfg.API.MaxBatch != 10 {
		t.Errorf("API.MaxBatch: got %d, want 10", cfg.API.MaxBatch)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "https://ads.example.com" {
		t.Errorf("API.CORSOrigins: got %v", cfg.API.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("LoadFromFile() with nonexistent path should return error")
	}
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "engine:\n  workers: 0\n")
	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile() should reject zero workers")
	}
}

// ── Environment overrides ──

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "engine:\n  workers: 2\napi:\n  port: 9090\n")
	t.Setenv("ADLENS_ENGINE_WORKERS", "8")
	t.Setenv("ADLENS_LOGGING_LEVEL", "warn")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Engine.Workers != 8 {
		t.Errorf("Engine.Workers: got %d, want 8", cfg.Engine.Workers)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
}

// ── Validate ──

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative min", func(c *Config) { c.Engine.MinTextRunes = -1 }, "min_text_runes"},
		{"zero max", func(c *Config) { c.Engine.MaxInputRunes = 0 }, "max_input_runes"},
		{"min above max", func(c *Config) { c.Engine.MinTextRunes = 50; c.Engine.MaxInputRunes = 40 }, "exceeds"},
		{"zero workers", func(c *Config) { c.Engine.Workers = 0 }, "workers"},
		{"negative ttl", func(c *Config) { c.Analysis.CacheTTL = -5 }, "cache_ttl"},
		{"port zero", func(c *Config) { c.API.Port = 0 }, "api.port"},
		{"port too high", func(c *Config) { c.API.Port = 70000 }, "api.port"},
		{"zero body", func(c *Config) { c.API.MaxBodyBytes = 0 }, "max_body_bytes"},
		{"zero batch", func(c *Config) { c.API.MaxBatch = 0 }, "max_batch"},
		{"negative rps", func(c *Config) { c.API.RateLimitRPS = -1 }, "rate_limit_rps"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() should fail with %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error: got %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	a := APIConfig{Host: "127.0.0.1", Port: 8081}
	if got := a.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr(): got %q, want %q", got, "127.0.0.1:8081")
	}
}

// ── Describe ──

func TestDescribeSources(t *testing.T) {
	cfg := Default()
	cfg.API.Port = 9999
	cfg.Engine.Workers = 16
	t.Setenv("ADLENS_ENGINE_WORKERS", "16")

	got := map[string]SettingStatus{}
	for _, s := range Describe(cfg) {
		got[s.Key] = s
	}

	if len(got) != 14 {
		t.Errorf("Describe(): got %d settings, want 14", len(got))
	}
	if s := got["api.port"]; s.Source != SourceFile || s.Value != "9999" {
		t.Errorf("api.port: got %+v", s)
	}
	if s := got["engine.workers"]; s.Source != SourceEnv {
		t.Errorf("engine.workers: got source %q, want %q", s.Source, SourceEnv)
	}
	if s := got["logging.level"]; s.Source != SourceDefault || s.Value != "info" {
		t.Errorf("logging.level: got %+v", s)
	}
}

func TestEnvVar(t *testing.T) {
	tests := map[string]string{
		"engine.workers":     "ADLENS_ENGINE_WORKERS",
		"api.rate_limit_rps": "ADLENS_API_RATE_LIMIT_RPS",
	}
	for key, want := range tests {
		if got := EnvVar(key); got != want {
			t.Errorf("EnvVar(%q): got %q, want %q", key, got, want)
		}
	}
}

// ── homeDir ──

func TestHomeDirReturnsNonEmpty(t *testing.T) {
	if homeDir() == "" {
		t.Error("homeDir() should not return empty string")
	}
}
