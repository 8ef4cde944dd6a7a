package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=*"`
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTExpire  time.Duration `env:"JWT_EXPIRE,  default=168h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,    default=user_manager"`
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
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// weakSecrets are known default values that must never sign tokens.
var weakSecrets = []string{
	"your-super-secret-jwt-key-CHANGE-THIS-IN-PRODUCTION",
	"your-secret-key-change-this-in-production",
	"change-me",
	"secret",
	"password",
}

// Validate checks the JWT secret before the process accepts traffic. A
// missing secret is always fatal; a weak or short one is fatal in
// production and downgraded to a warning elsewhere.
func (c *Config) Validate(log zerolog.Logger) error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	for _, weak := range weakSecrets {
		if c.JWTSecret == weak {
			if err := c.secretViolation(log, "JWT_SECRET is using a known default or weak value"); err != nil {
				return err
			}
			break
		}
	}

	if len(c.JWTSecret) < 32 {
		if err := c.secretViolation(log, "JWT_SECRET must be at least 32 characters long"); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) secretViolation(log zerolog.Logger, msg string) error {
	if c.IsProduction() {
		return errors.New(msg)
	}
	log.Warn().Msg(msg + "; this is not safe for production")
	return nil
}
