package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/golfscore/internal/services/handicap"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config is the server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Courses  CoursesConfig  `yaml:"courses"`
	Handicap HandicapConfig `yaml:"handicap"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	Type          string        `yaml:"type"`
	RedisURL      string        `yaml:"redis_url"`
	RoundTTL      time.Duration `yaml:"round_ttl"`
	SettlementTTL time.Duration `yaml:"settlement_ttl"`
}

// CoursesConfig points at extra course files loaded on top of the built-in catalog
type CoursesConfig struct {
	Path string `yaml:"path"`
}

// HandicapConfig holds handicap calculation settings
type HandicapConfig struct {
	// ReferencePar is "course" (course par) or "fixed72"
	ReferencePar string `yaml:"reference_par"`
}

// ScoringConfig holds format engine settings
type ScoringConfig struct {
	// NassauRequireComplete withholds a Nassau segment until every score is in
	NassauRequireComplete bool `yaml:"nassau_require_complete"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Type:          StorageTypeMemory,
			RedisURL:      "redis://localhost:6379",
			RoundTTL:      12 * time.Hour,
			SettlementTTL: 7 * 24 * time.Hour,
		},
		Handicap: HandicapConfig{ReferencePar: string(handicap.ReferenceParCourse)},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file when path is non-empty, then
// applies environment overrides
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides settings from environment variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("GOLFSCORE_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GOLFSCORE_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("STORAGE_TYPE"); ok {
		c.Storage.Type = v
	}
	if v, ok := lookup("REDIS_URL"); ok {
		c.Storage.RedisURL = v
	}
	if v, ok := lookup("COURSES_FILE"); ok {
		c.Courses.Path = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("REFERENCE_PAR"); ok {
		c.Handicap.ReferencePar = v
	}
	return nil
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	switch c.Storage.Type {
	case StorageTypeMemory, StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage type %q: must be 'memory' or 'redis'", c.Storage.Type)
	}
	switch handicap.ReferencePar(c.Handicap.ReferencePar) {
	case handicap.ReferenceParCourse, handicap.ReferenceParFixed72:
	default:
		return fmt.Errorf("invalid reference par %q: must be 'course' or 'fixed72'", c.Handicap.ReferencePar)
	}
	return nil
}

// SlogLevel converts the configured level name into a slog level
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
