package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"partscatalog/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

var serverKeys = []string{
	"PORT", "DATABASE_URL", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_HOST",
	"POSTGRES_PORT", "POSTGRES_SSLMODE", "JWT_SECRET", "ACCESS_TTL", "ADMIN_EMAIL",
	"ADMIN_PASSWORD_HASH", "SEED", "CORS_ORIGINS", "GO_ENV",
	"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET",
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, serverKeys...)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.True(t, cfg.Seed)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=catalog sslmode=disable", cfg.DSN())
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	clearEnv(t, serverKeys...)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("SEED", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DSN())
	assert.False(t, cfg.Seed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]map[string]string{
		"bad port":             {"POSTGRES_PORT": "abc"},
		"bad ttl":              {"ACCESS_TTL": "soon"},
		"prod needs secret":    {"GO_ENV": "prod"},
		"email only":           {"ADMIN_EMAIL": "a@b.c"},
		"razorpay key only":    {"RAZORPAY_KEY_ID": "rzp_test_x"},
		"razorpay secret only": {"RAZORPAY_KEY_SECRET": "s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t, serverKeys...)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_AuthEnabled(t *testing.T) {
	clearEnv(t, serverKeys...)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_PaymentsEnabled(t *testing.T) {
	clearEnv(t, serverKeys...)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.PaymentsEnabled())

	t.Setenv("RAZORPAY_KEY_ID", " rzp_test_x ")
	t.Setenv("RAZORPAY_KEY_SECRET", "s")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.PaymentsEnabled())
	assert.Equal(t, "rzp_test_x", cfg.RazorpayKeyID)
}

// =====================
// client
// =====================

func TestLoadClient(t *testing.T) {
	clearEnv(t, "API_BASE_URL", "API_TIMEOUT", "API_TOKEN")

	cfg, err := config.LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("API_TOKEN", " tok ")
	cfg, err = config.LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "tok", cfg.Token)
}

func TestLoadClient_Invalid(t *testing.T) {
	clearEnv(t, "API_BASE_URL", "API_TIMEOUT", "API_TOKEN")

	t.Setenv("API_BASE_URL", "not a url")
	_, err := config.LoadClient()
	assert.Error(t, err)

	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TIMEOUT", "0s")
	_, err = config.LoadClient()
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	// godotenv は既存の値を上書きしないので消しておく
	t.Setenv("CATALOG_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("CATALOG_TEST_VALUE"))
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOG_TEST_VALUE=from-file\n"), 0o600))

	require.NoError(t, config.LoadEnvFile(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("CATALOG_TEST_VALUE"))

	require.NoError(t, config.LoadEnvFile(filepath.Join(dir, "none.env")))
}
