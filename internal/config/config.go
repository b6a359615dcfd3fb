// Package config reads runtime settings from the environment. A .env file
// is honored in development via godotenv; real deployments set the variables
// directly.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DatabaseDSN string
	JWTSecret   string
	MongoURL    string
	TokenTTL    time.Duration
}

const defaultTokenTTLHours = 24

// Load builds the Config from the environment. The database DSN and the
// session-signing secret have no defaults: missing values fail startup
// rather than silently running with a guessable secret.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        os.Getenv("ADDR"),
		DatabaseDSN: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MongoURL:    os.Getenv("MONGO_URL"),
		TokenTTL:    defaultTokenTTLHours * time.Hour,
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return nil, errors.New("TOKEN_TTL_HOURS must be a positive integer")
		}
		cfg.TokenTTL = time.Duration(hours) * time.Hour
	}

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}
