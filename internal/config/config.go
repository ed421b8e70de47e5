package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backends for the game state
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	State  StateConfig
	Redis  RedisConfig
	SQLite SQLiteConfig
	MCP    MCPConfig
}

// StateConfig selects where the game state lives
type StateConfig struct {
	Backend string `env:"STATE_BACKEND" envDefault:"file"`
	File    string `env:"STATE_FILE" envDefault:"gamestate.json"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
	Key string `env:"REDIS_STATE_KEY" envDefault:"gamestate"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"gamestate.db"`
}

// MCPConfig describes the tool server to connecting agents
type MCPConfig struct {
	Name    string `env:"MCP_SERVER_NAME" envDefault:"dungeon-master-state"`
	Version string `env:"MCP_SERVER_VERSION" envDefault:"v0.1.0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate required fields
	switch cfg.State.Backend {
	case BackendFile:
		if cfg.State.File == "" {
			return nil, fmt.Errorf("STATE_FILE is required for the file backend")
		}
	case BackendRedis:
		if cfg.Redis.URL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	case BackendSQLite:
		if cfg.SQLite.Path == "" {
			return nil, fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return nil, fmt.Errorf("unknown STATE_BACKEND %q", cfg.State.Backend)
	}

	return cfg, nil
}
