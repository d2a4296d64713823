package config

import (
	"fmt"
	"time"
)

// AuthConfig holds token issuance configuration.
type AuthConfig struct {
	// JWTSecret signs issued bearer tokens (HS256).
	JWTSecret string
	// TokenTTL is how long an issued token stays valid.
	TokenTTL time.Duration
	// BcryptCost is the cost factor used when hashing credentials.
	BcryptCost int
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:  GetEnv("JWT_SECRET", ""),
		TokenTTL:   GetEnvDuration("JWT_TTL", 2*time.Hour),
		BcryptCost: GetEnvInt("BCRYPT_COST", 10),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TokenTTL must be greater than 0")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BcryptCost must be between 4 and 31")
	}
	return nil
}
