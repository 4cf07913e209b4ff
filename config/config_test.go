package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "recipes", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
	// Outside production a missing secret falls back to the dev value.
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "kitchen")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "kitchen", cfg.DBName)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestSecretsOverrideEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.JWTSecret)
}

func TestValidateConfigInProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	err := ValidateConfig(&Config{DBHost: "db", DBName: "recipes", DBPassword: "pw"})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "JWT_SECRET", verr.Field)

	err = ValidateConfig(&Config{JWTSecret: "s", DBHost: "db", DBName: "recipes"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "DB_PASSWORD", verr.Field)

	assert.NoError(t, ValidateConfig(&Config{
		JWTSecret: "s", DBHost: "db", DBName: "recipes", DBPassword: "pw",
	}))
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())
}
