package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is an intermediate DTO for environment parsing. Token lifetimes
// arrive as bare integers (minutes for access, days for refresh) and are
// converted to time.Duration when copied into Config.
type envConfig struct {
	EndpointAddr       string `env:"ENDPOINT_ADDR"`
	DatabaseDSN        string `env:"DATABASE_URL"`
	SecretKey          string `env:"JWT_SECRET_KEY"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_EXPIRES"`
	RefreshTokenDays   int    `env:"REFRESH_TOKEN_EXPIRES"`
	Debug              bool   `env:"DEBUG"`
}

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the corresponding Config fields untouched.
func parseEnv(config *Config) {
	c := &envConfig{}
	if err := env.Parse(c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenMinutes > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenMinutes) * time.Minute
	}
	if c.RefreshTokenDays > 0 {
		config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenDays) * 24 * time.Hour
	}
	if c.Debug {
		config.Debug = true
	}
}
