package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string        `env:"PORT,            default=8080"`
	Env            string        `env:"ENV,             default=development"`
	JWTSecret      string        `env:"JWT_SECRET"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL, default=30m"`
	ResetTokenTTL  time.Duration `env:"RESET_TOKEN_TTL,  default=24h"`
	LogLevel       string        `env:"LOG_LEVEL,       default=info"`
	// AllowedOrigins is a comma-separated CORS origin list.
	AllowedOrigins string `env:"ALLOWED_ORIGINS, default=http://localhost:5173"`

	Mongo      MongoConfig
	Redis      RedisConfig
	Salesforce SalesforceConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=customer_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SalesforceConfig struct {
	// MockDataDir holds the per-customer JSON files standing in for Salesforce.
	MockDataDir string `env:"SALESFORCE_MOCK_DIR, default=mocks/salesforce"`
}

// Origins splits AllowedOrigins into the list Echo's CORS middleware expects.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
