// Package config handles configuration loading for adlens.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ADLENS_API_PORT.
const EnvPrefix = "ADLENS"

// Config represents the complete application configuration.
type Config struct {
	Engine   EngineConfig   `mapstructure:"engine"   json:"engine" yaml:"engine"`
	Analysis AnalysisConfig `mapstructure:"analysis" json:"analysis" yaml:"analysis"`
	API      APIConfig      `mapstructure:"api"      json:"api" yaml:"api"`
	Logging  LoggingConfig  `mapstructure:"logging"  json:"logging" yaml:"logging"`
}

// EngineConfig holds analysis engine limits.
type EngineConfig struct {
	MinTextRunes  int `mapstructure:"min_text_runes"  json:"min_text_runes" yaml:"min_text_runes"`
	MaxInputRunes int `mapstructure:"max_input_runes" json:"max_input_runes" yaml:"max_input_runes"`
	Workers       int `mapstructure:"workers"         json:"workers" yaml:"workers"`
}

// AnalysisConfig holds analysis result caching settings.
type AnalysisConfig struct {
	CacheTTL        int `mapstructure:"cache_ttl"         json:"cache_ttl" yaml:"cache_ttl"` // seconds, 0 disables
	CacheMaxEntries int `mapstructure:"cache_max_entries" json:"cache_max_entries" yaml:"cache_max_entries"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host           string   `mapstructure:"host"             json:"host" yaml:"host"`
	Port           int      `mapstructure:"port"             json:"port" yaml:"port"`
	CORSOrigins    []string `mapstructure:"cors_origins"     json:"cors_origins" yaml:"cors_origins"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"   json:"max_body_bytes" yaml:"max_body_bytes"`
	MaxBatch       int      `mapstructure:"max_batch"        json:"max_batch" yaml:"max_batch"`
	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"   json:"rate_limit_rps" yaml:"rate_limit_rps"` // 0 disables
	RateLimitBurst int      `mapstructure:"rate_limit_burst" json:"rate_limit_burst" yaml:"rate_limit_burst"`
}

// Addr returns the listen address.
func (a APIConfig) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  json:"level" yaml:"level"`   // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" json:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.adlens/config.yaml (home directory)
//  3. /etc/adlens/config.yaml (system)
//
// Environment variables override config file values.
// Format: ADLENS_<SECTION>_<KEY>, e.g., ADLENS_ENGINE_WORKERS
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".adlens"))
	v.AddConfigPath("/etc/adlens")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

// Default returns the configuration with no file and no environment applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are static and always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Engine defaults
	v.SetDefault("engine.min_text_runes", 10)
	v.SetDefault("engine.max_input_runes", 20000)
	v.SetDefault("engine.workers", 4)

	// Analysis defaults
	v.SetDefault("analysis.cache_ttl", 300) // 5 minutes
	v.SetDefault("analysis.cache_max_entries", 1000)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("api.max_body_bytes", 1<<20)
	v.SetDefault("api.max_batch", 100)
	v.SetDefault("api.rate_limit_rps", 20.0)
	v.SetDefault("api.rate_limit_burst", 40)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Engine.MinTextRunes < 0:
		return fmt.Errorf("engine.min_text_runes must not be negative, got %d", c.Engine.MinTextRunes)
	case c.Engine.MaxInputRunes <= 0:
		return fmt.Errorf("engine.max_input_runes must be positive, got %d", c.Engine.MaxInputRunes)
	case c.Engine.MinTextRunes > c.Engine.MaxInputRunes:
		return fmt.Errorf("engine.min_text_runes (%d) exceeds engine.max_input_runes (%d)",
			c.Engine.MinTextRunes, c.Engine.MaxInputRunes)
	case c.Engine.Workers <= 0:
		return fmt.Errorf("engine.workers must be positive, got %d", c.Engine.Workers)
	case c.Analysis.CacheTTL < 0:
		return fmt.Errorf("analysis.cache_ttl must not be negative, got %d", c.Analysis.CacheTTL)
	case c.API.Port <= 0 || c.API.Port > 65535:
		return fmt.Errorf("api.port out of range: %d", c.API.Port)
	case c.API.MaxBodyBytes <= 0:
		return fmt.Errorf("api.max_body_bytes must be positive, got %d", c.API.MaxBodyBytes)
	case c.API.MaxBatch <= 0:
		return fmt.Errorf("api.max_batch must be positive, got %d", c.API.MaxBatch)
	case c.API.RateLimitRPS < 0:
		return fmt.Errorf("api.rate_limit_rps must not be negative, got %g", c.API.RateLimitRPS)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging.format %q", c.Logging.Format)
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
