package config

import "time"

type Config struct {
	DatabaseURL  string
	RedisURL     string
	JWTSecret    string
	GatePassword string
	Environment  string

	// reference timezone for recap month/weekday bucketing
	RecapTimezone *time.Location

	// first year recaps exist for; requests below this are rejected
	RecapLaunchYear int
}
