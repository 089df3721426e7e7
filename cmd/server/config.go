package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime settings for the auth gateway.
//
// Fields:
//   - Host/Port: HTTP bind address.
//   - SecretKey: HMAC secret for signing tokens (HS256), at least 32 bytes.
//   - DBURI: database target for the sqlite driver.
//   - RootLogin/RootPassword: bootstrap account ensured at startup.
//   - TokenTTL: auth token validity window in seconds.
//   - CookieName: cookie carrying the token, consumed by the proxy check.
type Config struct {
	Host         string
	Port         int
	SecretKey    string
	DBURI        string
	RootLogin    string
	RootPassword string
	TokenTTL     int
	CookieName   string
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey, RootLogin, and RootPassword have no defaults on purpose.
func (c *Config) LoadDefaults() {
	c.Host = "0.0.0.0"
	c.Port = 80
	c.DBURI = "file::memory:?cache=shared"
	c.TokenTTL = 3600
	c.CookieName = "token"
}

// LoadConfig builds a Config by applying defaults and overlaying values from
// the environment. Missing required values fail startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT must be an integer: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("DB_URI"); v != "" {
		cfg.DBURI = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("TOKEN_TTL must be an integer: %w", err)
		}
		cfg.TokenTTL = ttl
	}
	if v := os.Getenv("COOKIE_NAME"); v != "" {
		cfg.CookieName = v
	}

	cfg.SecretKey = os.Getenv("SECRET_KEY")
	cfg.RootLogin = os.Getenv("ROOT_LOGIN")
	cfg.RootPassword = os.Getenv("ROOT_PASSWORD")

	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("SECRET_KEY is required and must be at least 32 characters")
	}
	if cfg.RootLogin == "" || cfg.RootPassword == "" {
		return nil, fmt.Errorf("ROOT_LOGIN and ROOT_PASSWORD are required")
	}

	return cfg, nil
}

// GetSigningKey implements auth.Config
func (c *Config) GetSigningKey() string {
	return c.SecretKey
}

// GetTokenExpiration implements auth.Config, in seconds
func (c *Config) GetTokenExpiration() int {
	return c.TokenTTL
}

// GetCookieName implements auth.Config
func (c *Config) GetCookieName() string {
	return c.CookieName
}

// Addr returns the HTTP bind address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
