package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTLSeconds is the session token lifetime. Access it via TokenTTL.
	TokenTTLSeconds int `env:"TOKEN_TTL, default=3600"`

	RateLimitMax    int64         `env:"RATE_LIMIT_MAX,    default=100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=1h"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=marketplace"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// The signing secret has no compiled-in default in any environment: a
// process without JWT_SECRET refuses to start.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET must be set")
	}
	return &cfg, nil
}

// TokenTTL returns the session token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// IsProduction reports whether the process runs in production mode, which
// enables the Secure attribute on session cookies.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
