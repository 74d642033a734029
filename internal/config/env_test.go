package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, 1024, cfg.BufferSize)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TEXTUTIL_LOG_LEVEL", "DEBUG")
	t.Setenv("TEXTUTIL_LOG_FORMAT", "json")
	t.Setenv("TEXTUTIL_COLOR", "never")
	t.Setenv("TEXTUTIL_BUFFER_SIZE", "4096")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 4096, cfg.BufferSize)
}

func TestLoadFromEnv_InvalidBufferSize(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TEXTUTIL_BUFFER_SIZE", "lots")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadFromEnvWithPrefix(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TR_LOG_LEVEL", "INFO")
	t.Setenv("TR_BUFFER_SIZE", "64")

	cfg, err := LoadFromEnvWithPrefix("TR")
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 64, cfg.BufferSize)
}

func TestEnvConfig_ToAppConfig(t *testing.T) {
	env := EnvConfig{
		LogLevel:   "ERROR",
		LogFormat:  "JSON",
		Color:      "off",
		BufferSize: 8,
	}

	cfg := env.ToAppConfig()

	assert.Equal(t, "ERROR", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, ColorNever, cfg.Color())
	assert.Equal(t, MinBufferSize, cfg.BufferSize(), "small buffers are raised to the minimum")
}

func TestEnvConfig_ToAppConfigEmpty(t *testing.T) {
	cfg := EnvConfig{}.ToAppConfig()

	assert.Equal(t, NewAppConfig(), cfg)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "TEXTUTIL_LOG_LEVEL=DEBUG\nTEXTUTIL_BUFFER_SIZE=2048\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { clearEnvVars(t) })

	assert.Equal(t, "DEBUG", os.Getenv("TEXTUTIL_LOG_LEVEL"))
	assert.Equal(t, "2048", os.Getenv("TEXTUTIL_BUFFER_SIZE"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TEXTUTIL_LOG_LEVEL", "ERROR")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEXTUTIL_LOG_LEVEL=DEBUG\n"), 0o600))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "ERROR", os.Getenv("TEXTUTIL_LOG_LEVEL"))
}

func TestLoadDotEnv_NonexistentFile(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestLoadConfig(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "TEXTUTIL_LOG_FORMAT=json\nTEXTUTIL_COLOR=always\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Cleanup(func() { clearEnvVars(t) })

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, ColorAlways, cfg.Color())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, DefaultBufferSize, cfg.BufferSize())
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEXTUTIL_LOG_LEVEL='unterminated\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

// clearEnvVars removes every variable the tests touch so results do not
// depend on the caller's environment.
func clearEnvVars(t *testing.T) {
	t.Helper()

	vars := []string{
		"TEXTUTIL_LOG_LEVEL",
		"TEXTUTIL_LOG_FORMAT",
		"TEXTUTIL_COLOR",
		"TEXTUTIL_BUFFER_SIZE",
		"TR_LOG_LEVEL",
		"TR_LOG_FORMAT",
		"TR_COLOR",
		"TR_BUFFER_SIZE",
	}

	for _, v := range vars {
		_ = os.Unsetenv(v)
	}
}
