package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Backend names accepted by Config.Backend.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds process configuration read from the environment.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string `env:"LETTERZ_DB"`

	// Backend selects where the deck is persisted.
	Backend string `env:"LETTERZ_BACKEND" envDefault:"sqlite"`

	// BoltPath is the bbolt file used by the bolt backend. Empty means
	// letterz.bolt next to the SQLite database.
	BoltPath string `env:"LETTERZ_BOLT_PATH"`

	RedisAddr     string `env:"LETTERZ_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"LETTERZ_REDIS_PASSWORD"`
	RedisDB       int    `env:"LETTERZ_REDIS_DB" envDefault:"0"`

	// StoreKey is the key the deck is saved under.
	StoreKey string `env:"LETTERZ_STORE_KEY" envDefault:"letterz_srs_v1"`

	// Lowercase shows and accepts lowercase letters.
	Lowercase bool `env:"LETTERZ_LOWERCASE" envDefault:"false"`

	// TTS is the text-to-speech program, e.g. "say" or "espeak". Empty
	// disables audio prompts.
	TTS string `env:"LETTERZ_TTS"`

	LogMode string `env:"LETTERZ_LOG_MODE" envDefault:"dev"`
	// LogFile is where logs go. Empty means letterz.log in the data dir.
	LogFile string `env:"LETTERZ_LOG_FILE"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendBolt, BackendRedis, BackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want sqlite, bolt, redis or memory)", c.Backend)
	}
}

// ResolveBoltPath returns BoltPath or the default beside dbPath.
func (c Config) ResolveBoltPath(dbPath string) string {
	if c.BoltPath != "" {
		return c.BoltPath
	}
	return filepath.Join(filepath.Dir(dbPath), "letterz.bolt")
}

// ResolveLogFile returns LogFile or the default inside dataDir.
func (c Config) ResolveLogFile(dataDir string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(dataDir, "letterz.log")
}
