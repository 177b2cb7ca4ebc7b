package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRecapTimezone   = "America/New_York"
	defaultRecapLaunchYear = 2023
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	gatePassword := os.Getenv("GATE_PASSWORD")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if gatePassword == "" {
		return nil, fmt.Errorf("GATE_PASSWORD environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	tzName := os.Getenv("RECAP_TIMEZONE")
	if tzName == "" {
		tzName = defaultRecapTimezone
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid RECAP_TIMEZONE %q: %w", tzName, err)
	}

	launchYear := defaultRecapLaunchYear
	if raw := os.Getenv("RECAP_LAUNCH_YEAR"); raw != "" {
		launchYear, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RECAP_LAUNCH_YEAR %q: %w", raw, err)
		}
	}

	return &Config{
		DatabaseURL:     databaseURL,
		RedisURL:        redisURL,
		JWTSecret:       jwtSecret,
		GatePassword:    gatePassword,
		Environment:     environment,
		RecapTimezone:   loc,
		RecapLaunchYear: launchYear,
	}, nil
}
