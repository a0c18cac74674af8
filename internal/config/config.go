package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "change-me-jwt-secret"

// SMTP holds mail delivery settings. The sender degrades to a logged no-op
// when Host or Username is empty.
type SMTP struct {
	Host     string        `env:"SMTP_HOST"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Username string        `env:"SMTP_USER"`
	Password string        `env:"SMTP_PASS"`
	From     string        `env:"SMTP_FROM"`
	SSL      bool          `env:"SMTP_SECURE" envDefault:"false"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
}

type Config struct {
	AppEnv            string        `env:"APP_ENV" envDefault:"dev"`
	Port              string        `env:"PORT" envDefault:"8080"`
	DatabaseURL       string        `env:"DATABASE_URL" envDefault:"club.db"`
	JWTSecret         string        `env:"JWT_SECRET" envDefault:"change-me-jwt-secret"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	AdminUsername     string        `env:"ADMIN_USERNAME"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	AllowedOrigins    []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"https://speedcubingfinland.fi,http://localhost:5173"`
	SMTP              SMTP
}

// Load reads .env when present, then decodes and validates the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.AdminUsername) == "" {
		return fmt.Errorf("ADMIN_USERNAME must be set")
	}
	if strings.TrimSpace(cfg.AdminPasswordHash) == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH must be set")
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) {
		secret := strings.TrimSpace(cfg.JWTSecret)
		if secret == "" || secret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}
