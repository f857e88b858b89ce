package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Session   SessionConfig
	Directory DirectoryConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

type SessionConfig struct {
	// Key names the single record the persisted session lives under.
	Key string `env:"SESSION_KEY, default=rotaract_user"`
	// StrictRestore re-validates a restored session against the directory
	// and discards records that no longer match. Set false to reproduce the
	// legacy trust-on-read behaviour.
	StrictRestore bool `env:"SESSION_STRICT_RESTORE, default=true"`
}

type DirectoryConfig struct {
	// Source selects the roster backing: "static" (compiled-in seed) or
	// "mongo".
	Source string `env:"DIRECTORY_SOURCE, default=static"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=club_dashboard"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Directory.Source != "static" && cfg.Directory.Source != "mongo" {
		return nil, fmt.Errorf("config: unknown DIRECTORY_SOURCE %q", cfg.Directory.Source)
	}
	return &cfg, nil
}
