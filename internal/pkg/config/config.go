package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	PostgresURL       string        `env:"POSTGRES_URL,required"`
	MaxPoolSize       int           `env:"MAX_POOL_SIZE" envDefault:"10"`
	RedisAddr         string        `env:"REDIS_ADDR"` // empty disables the dashboard cache
	DashboardCacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"60s"`
	ServerAddr        string        `env:"SERVER_ADDR" envDefault:":8080"`
	AdminAddr         string        `env:"ADMIN_ADDR" envDefault:":9091"`
	RateLimitRPS      float64       `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst    int           `env:"RATE_LIMIT_BURST" envDefault:"100"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
