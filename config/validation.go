package config

import "fmt"

// validate rejects configurations the server cannot safely run with.
func validate(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit values must be positive")
	}
	if cfg.RateLimitLoginRPS <= 0 || cfg.RateLimitLoginBurst <= 0 {
		return fmt.Errorf("login rate limit values must be positive")
	}
	return nil
}
