package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOOKIFY_JWT_SECRET", "test-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err) // unreadable explicit path is an error

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, "bookify", cfg.Redis.Prefix)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("BOOKIFY_JWT_SECRET", "")

	path := filepath.Join(t.TempDir(), "server.yaml")
	body := []byte(`
server:
  host: 127.0.0.1
  port: 9090
jwt:
  secret: file-secret
  issuer: test
database:
  database: bookify_test
`)
	require.NoError(t, os.WriteFile(path, body, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "bookify_test", cfg.Database.Database)
	// untouched sections keep defaults
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("BOOKIFY_JWT_SECRET", "")

	_, err := Load("")
	assert.Error(t, err)
}
