package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

// setEnv applies the given environment variables for the duration of the
// test. t.Setenv handles restoring the previous values.
func setEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"HBNB_AUTH_JWT_SECRET": testSecret,
		// Clear anything the ambient environment might carry for the
		// values under test.
		"HBNB_SERVER_PORT":      "",
		"HBNB_SERVER_LOG_LEVEL": "",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "default log level should be info")
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10080, cfg.Auth.RefreshTokenLifetimeMinutes)
	assert.Equal(t, 0, cfg.Auth.BcryptCost, "bcrypt cost should default to 0 (library default)")
}

func TestLoadFromEnv(t *testing.T) {
	setEnv(t, map[string]string{
		"HBNB_SERVER_PORT":                 "9090",
		"HBNB_SERVER_LOG_LEVEL":            "debug",
		"HBNB_AUTH_JWT_SECRET":             testSecret,
		"HBNB_AUTH_TOKEN_LIFETIME_MINUTES": "15",
		"HBNB_AUTH_BCRYPT_COST":            "12",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "missing JWT secret",
			envVars: map[string]string{
				"HBNB_AUTH_JWT_SECRET": "",
			},
		},
		{
			name: "short JWT secret",
			envVars: map[string]string{
				"HBNB_AUTH_JWT_SECRET": "tooshort",
			},
		},
		{
			name: "port out of range",
			envVars: map[string]string{
				"HBNB_AUTH_JWT_SECRET": testSecret,
				"HBNB_SERVER_PORT":     "999999",
			},
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"HBNB_AUTH_JWT_SECRET":  testSecret,
				"HBNB_SERVER_LOG_LEVEL": "loud",
			},
		},
		{
			name: "negative token lifetime",
			envVars: map[string]string{
				"HBNB_AUTH_JWT_SECRET":             testSecret,
				"HBNB_AUTH_TOKEN_LIFETIME_MINUTES": "-5",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Nil(t, cfg)
		})
	}
}
