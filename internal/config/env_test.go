package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	os.Setenv( //nolint:errcheck // test fixture
	"DATABASE_URL", "postgres://localhost:5432/encore_test")
	os.Setenv( //nolint:errcheck // test fixture
	"REDIS_URL", "redis://localhost:6379/0")
	os.Setenv( //nolint:errcheck // test fixture
	"JWT_SECRET", "test-secret-key-for-testing")
	os.Setenv( //nolint:errcheck // test fixture
	"GATE_PASSWORD", "test-gate-password")
	os.Setenv( //nolint:errcheck // test fixture
	"RECAP_TIMEZONE", "UTC")

	t.Cleanup(func() {
		for _, key := range []string{
			"DATABASE_URL", "REDIS_URL", "JWT_SECRET", "GATE_PASSWORD",
			"ENVIRONMENT", "RECAP_TIMEZONE", "RECAP_LAUNCH_YEAR",
		} {
			os.Unsetenv( //nolint:errcheck // test cleanup
			key)
		}
	})
}

func TestLoadEnvironmentVariables_Success(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/encore_test", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "test-secret-key-for-testing", cfg.JWTSecret)
	assert.Equal(t, "test-gate-password", cfg.GatePassword)
	assert.Equal(t, "UTC", cfg.RecapTimezone.String())
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, defaultRecapLaunchYear, cfg.RecapLaunchYear)
}

func TestLoadEnvironmentVariables_MissingRequired(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "REDIS_URL", "JWT_SECRET", "GATE_PASSWORD"} {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			os.Unsetenv( //nolint:errcheck // test fixture
			key)

			_, err := LoadEnvironmentVariables()

			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadEnvironmentVariables_LaunchYearOverride(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv( //nolint:errcheck // test fixture
	"RECAP_LAUNCH_YEAR", "2020")

	cfg, err := LoadEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, 2020, cfg.RecapLaunchYear)
}

func TestLoadEnvironmentVariables_InvalidLaunchYear(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv( //nolint:errcheck // test fixture
	"RECAP_LAUNCH_YEAR", "not-a-year")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECAP_LAUNCH_YEAR")
}

func TestLoadEnvironmentVariables_InvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	os.Setenv( //nolint:errcheck // test fixture
	"RECAP_TIMEZONE", "Nowhere/Invalid")

	_, err := LoadEnvironmentVariables()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECAP_TIMEZONE")
}
