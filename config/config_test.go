package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUploadPolicyOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uploads.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_file_size: 2048\nallowed_file_types: [image/png]\n"), 0o600))
	t.Setenv("UPLOADS_CONFIG_FILE", path)

	p := LoadUploadPolicy()
	assert.Equal(t, int64(2048), p.MaxFileSize)
	assert.Equal(t, []string{"image/png"}, p.AllowedFileTypes)
	assert.Equal(t, DefaultUploadPolicy().MaxImagesPerCar, p.MaxImagesPerCar)
	assert.True(t, p.Allows("IMAGE/PNG"))
	assert.False(t, p.Allows("image/jpeg"))
}

func TestLoadUploadPolicyMissingFile(t *testing.T) {
	t.Setenv("UPLOADS_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, DefaultUploadPolicy(), LoadUploadPolicy())
}

func TestDefaultGoogleRedirectFollowsPort(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "http://localhost:"+DefaultPort+"/api/v1/admin/auth/google/callback", defaultGoogleRedirectURL())

	t.Setenv("PORT", "9090")
	assert.Equal(t, "http://localhost:9090/api/v1/admin/auth/google/callback", defaultGoogleRedirectURL())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("CONTACT_RATE_LIMIT_RPS", "0.5")
	t.Setenv("DB_MAX_OPEN_CONNS", "nope")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	assert.True(t, IsProduction())
	assert.Equal(t, 0.5, GetEnvFloat("CONTACT_RATE_LIMIT_RPS", 1))
	assert.Equal(t, 10, GetEnvInt("DB_MAX_OPEN_CONNS", 10))
	assert.Equal(t, "fallback", GetEnv("SOMETHING_UNSET_FOR_TEST", "fallback"))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, AllowedOrigins())
}
