// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/krisalay/simple-nav/eviction"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"

	WriteThrough = "write-through"
	WriteBack    = "write-back"
)

// Config is the full server configuration.
type Config struct {
	Addr string `env:"NAV_ADDR" envDefault:":8080"`

	Storage         string        `env:"NAV_STORAGE" envDefault:"memory"`
	SQLitePath      string        `env:"NAV_SQLITE_PATH" envDefault:"data/simple-nav.db"`
	SQLiteTimeout   time.Duration `env:"NAV_SQLITE_TIMEOUT" envDefault:"2s"`
	WriteMode       string        `env:"NAV_WRITE_MODE" envDefault:"write-back"`
	WriteBackBuffer int           `env:"NAV_WRITE_BACK_BUFFER" envDefault:"1024"`

	Namespace  string `env:"NAV_CACHE_NAMESPACE" envDefault:"navcache:"`
	MaxEntries int    `env:"NAV_CACHE_MAX_ENTRIES" envDefault:"0"`
	MaxBytes   int64  `env:"NAV_CACHE_MAX_BYTES" envDefault:"5242880"`
	Eviction   string `env:"NAV_CACHE_EVICTION"`

	AllSitesTTL time.Duration `env:"NAV_ALL_SITES_TTL" envDefault:"1h"`
	SearchTTL   time.Duration `env:"NAV_SEARCH_TTL" envDefault:"10m"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("NAV_SQLITE_PATH is required for sqlite storage")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}

	switch c.WriteMode {
	case WriteThrough, WriteBack:
	default:
		return fmt.Errorf("unknown write mode %q", c.WriteMode)
	}

	if _, err := eviction.ParsePolicyType(c.Eviction); err != nil {
		return err
	}
	if c.MaxEntries < 0 || c.MaxBytes < 0 {
		return fmt.Errorf("cache quotas must not be negative")
	}
	if c.AllSitesTTL <= 0 || c.SearchTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Namespace == "" {
		return fmt.Errorf("NAV_CACHE_NAMESPACE must not be empty")
	}
	return nil
}

// EvictionPolicy returns the validated eviction policy.
func (c Config) EvictionPolicy() eviction.PolicyType {
	t, _ := eviction.ParsePolicyType(c.Eviction)
	return t
}
