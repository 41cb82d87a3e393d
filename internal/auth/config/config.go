package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// DevSecretKey is the signing-secret fallback for local development only.
// Production deployments must set JWT_SECRET_KEY.
const DevSecretKey = "estatehub-dev-secret-do-not-use-in-production"

// Config holds all configuration for the identity module.
type Config struct {
	// JWT configuration
	JWTSecretKey string        `env:"JWT_SECRET_KEY" envDefault:""`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"estatehub"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"168h"` // 7 days

	// BcryptCost tunes the password hash work factor.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// ExternalAPIURL points at the companion service some read paths fall
	// back to. Optional; read lazily only by the call sites that need it.
	ExternalAPIURL string `env:"EXTERNAL_API_URL" envDefault:""`
}

// LoadConfig loads configuration from environment variables and applies
// defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load identity configuration from environment: " + err.Error())
	}

	if cfg.JWTSecretKey == "" {
		cfg.JWTSecretKey = DevSecretKey
	}
	if cfg.JWTIssuer == "" {
		return nil, errors.New("jwt issuer cannot be empty")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 168 * time.Hour
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("bcrypt cost must be between 4 and 31")
	}

	return cfg, nil
}
