package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("RBUI_TEST_VALUE", "set")
	assert.Equal(t, "set", envOrDefault("RBUI_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", envOrDefault("RBUI_TEST_UNSET", "fallback"))

	t.Setenv("RBUI_TEST_INT", "9090")
	assert.Equal(t, 9090, envIntOrDefault("RBUI_TEST_INT", 1))
	t.Setenv("RBUI_TEST_INT", "ninety")
	assert.Equal(t, 1, envIntOrDefault("RBUI_TEST_INT", 1))
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\n  api_key: from-file\nreports:\n  backend: s3\n  bucket: file-bucket\n"), 0o644))

	t.Setenv("RBUI_CONFIG", path)
	t.Setenv("PORT", "9090")
	t.Setenv("S3_BUCKET", "env-bucket")
	t.Setenv("DATABASE_URL", "postgres://localhost/rbui")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.Server.APIKey)
	assert.Equal(t, "s3", cfg.Reports.Backend)
	assert.Equal(t, "env-bucket", cfg.Reports.Bucket)
	assert.Equal(t, "postgres://localhost/rbui", cfg.Database.URL)
}

func TestHealthHandler_NoDatabase(t *testing.T) {
	rec := httptest.NewRecorder()
	healthHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
