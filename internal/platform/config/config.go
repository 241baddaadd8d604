// Package config loads process configuration from environment variables.
package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the server process.
// A missing .env file is not an error; variables may come from the
// real environment in deployed setups.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Mail     MailConfig
	Redis    RedisConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// DatabaseConfig selects the storage backend.
// When URL is set the server runs against PostgreSQL; otherwise it
// falls back to an embedded SQLite file at SQLitePath.
type DatabaseConfig struct {
	URL        string `env:"DATABASE_URL"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/tutor.db"`
}

// GeminiConfig configures the generative-content provider.
// An empty APIKey switches the server to canned demo content.
type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`
	// RatePerMinute caps outbound model calls; 0 disables throttling.
	RatePerMinute int `env:"GEMINI_RATE_PER_MINUTE" envDefault:"30"`
}

// MailConfig configures the SMTP delivery of verification codes.
// An empty Host switches delivery to the console fallback.
type MailConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM" envDefault:"noreply@tutor.local"`
}

// RedisConfig configures the optional lesson-cache acceleration layer.
// An empty Host disables Redis entirely; the durable store still
// serves every lookup.
type RedisConfig struct {
	Host     string        `env:"REDIS_HOST"`
	Port     string        `env:"REDIS_PORT" envDefault:"6379"`
	Password string        `env:"REDIS_PASSWORD"`
	TTL      time.Duration `env:"LESSON_CACHE_TTL" envDefault:"1h"`
}

// Load reads a .env file (if present) and parses the environment into
// a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found", "error", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
