package config

import (
	"fmt"
	"os"
	"strings"
)

// SettingSource represents where an effective setting value comes from.
type SettingSource string

const (
	SourceEnv     SettingSource = "env"
	SourceFile    SettingSource = "file"
	SourceDefault SettingSource = "default"
)

// SettingStatus describes one effective setting.
type SettingStatus struct {
	Key    string        `json:"key"    yaml:"key"`
	Value  string        `json:"value"  yaml:"value"`
	Source SettingSource `json:"source" yaml:"source"`
}

// Describe lists every setting of cfg with the source it most likely came
// from: an ADLENS_ environment variable, a config file, or the default.
func Describe(cfg *Config) []SettingStatus {
	def := Default()
	rows := []struct {
		key      string
		got, def any
	}{
		{"engine.min_text_runes", cfg.Engine.MinTextRunes, def.Engine.MinTextRunes},
		{"engine.max_input_runes", cfg.Engine.MaxInputRunes, def.Engine.MaxInputRunes},
		{"engine.workers", cfg.Engine.Workers, def.Engine.Workers},
		{"analysis.cache_ttl", cfg.Analysis.CacheTTL, def.Analysis.CacheTTL},
		{"analysis.cache_max_entries", cfg.Analysis.CacheMaxEntries, def.Analysis.CacheMaxEntries},
		{"api.host", cfg.API.Host, def.API.Host},
		{"api.port", cfg.API.Port, def.API.Port},
		{"api.cors_origins", strings.Join(cfg.API.CORSOrigins, ","), strings.Join(def.API.CORSOrigins, ",")},
		{"api.max_body_bytes", cfg.API.MaxBodyBytes, def.API.MaxBodyBytes},
		{"api.max_batch", cfg.API.MaxBatch, def.API.MaxBatch},
		{"api.rate_limit_rps", cfg.API.RateLimitRPS, def.API.RateLimitRPS},
		{"api.rate_limit_burst", cfg.API.RateLimitBurst, def.API.RateLimitBurst},
		{"logging.level", cfg.Logging.Level, def.Logging.Level},
		{"logging.format", cfg.Logging.Format, def.Logging.Format},
	}

	out := make([]SettingStatus, 0, len(rows))
	for _, r := range rows {
		got := fmt.Sprint(r.got)
		out = append(out, SettingStatus{
			Key:    r.key,
			Value:  got,
			Source: sourceOf(r.key, got, fmt.Sprint(r.def)),
		})
	}
	return out
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func sourceOf(key, got, def string) SettingSource {
	if os.Getenv(EnvVar(key)) != "" {
		return SourceEnv
	}
	if got != def {
		return SourceFile
	}
	return SourceDefault
}
