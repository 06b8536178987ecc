package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "X-Session-Id", cfg.Session.Header)
	assert.Equal(t, 1800, cfg.Session.IdleTTL)
	assert.Equal(t, 10000, cfg.Session.MaxSessions)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFrom_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "3")
	t.Setenv("WRITE_TIMEOUT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://mistore.example ,")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SESSION_IDLE_TTL", "60")
	t.Setenv("SESSION_MAX", "0")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Server.ReadTimeout)
	assert.Equal(t, 15, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "https://mistore.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 60, cfg.Session.IdleTTL)
	assert.Zero(t, cfg.Session.MaxSessions)
}

func TestLoadFrom_NegativeSessionLimits(t *testing.T) {
	t.Setenv("SESSION_MAX", "-1")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "SESSION_MAX")
}

func TestLoadFrom_DotEnvFile(t *testing.T) {
	// register cleanup so values applied by godotenv do not leak into other tests
	t.Setenv("SESSION_HEADER", "")
	os.Unsetenv("SESSION_HEADER")
	t.Setenv("HOST", "127.0.0.1")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SESSION_HEADER=X-Visitor\nHOST=10.0.0.1\n"), 0o644))

	cfg, err := LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, "X-Visitor", cfg.Session.Header)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "real environment wins over .env")
}

func TestLoadFrom_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "invalid log level")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			CORS:     CORSConfig{AllowedOrigins: []string{"*"}},
			Session:  SessionConfig{Header: "X-Session-Id"},
			LogLevel: "warn",
		}
	}

	require.NoError(t, valid().Validate())

	noPort := valid()
	noPort.Server.Port = ""
	assert.Error(t, noPort.Validate())

	noHeader := valid()
	noHeader.Session.Header = ""
	assert.Error(t, noHeader.Validate())

	negativeTTL := valid()
	negativeTTL.Session.IdleTTL = -5
	assert.Error(t, negativeTTL.Validate())

	negativeMax := valid()
	negativeMax.Session.MaxSessions = -1
	assert.Error(t, negativeMax.Validate())

	noOrigins := valid()
	noOrigins.CORS.AllowedOrigins = nil
	assert.Error(t, noOrigins.Validate())
}
