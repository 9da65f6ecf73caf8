package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {

	t.Run("empty", func(t *testing.T) {
		config, err := Parse(nil)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, Default(), config)

		level, err := config.ZerologLevel()
		if assert.NoError(t, err) {
			assert.Equal(t, zerolog.WarnLevel, level)
		}
	})

	t.Run("all fields", func(t *testing.T) {
		config, err := Parse([]byte("log-level: debug\ndebug-casts: true\ncolor: false\njson-output: true\n"))
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, "debug", config.LogLevel)
		assert.True(t, config.DebugCasts)
		assert.True(t, config.JSONOutput)
		assert.False(t, config.ShouldColorize())

		level, err := config.ZerologLevel()
		if assert.NoError(t, err) {
			assert.Equal(t, zerolog.DebugLevel, level)
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := Parse([]byte("log-level: loud"))
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		_, err := Parse([]byte("log-level: [debug"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if !assert.NoError(t, os.WriteFile(path, []byte("debug-casts: true"), 0o600)) {
			return
		}

		config, err := Load(path)
		if assert.NoError(t, err) {
			assert.True(t, config.DebugCasts)
		}
	})

	t.Run("environment variable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if !assert.NoError(t, os.WriteFile(path, []byte("json-output: true"), 0o600)) {
			return
		}
		t.Setenv(CONFIG_PATH_ENV_VAR, path)

		config, err := Load("")
		if assert.NoError(t, err) {
			assert.True(t, config.JSONOutput)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
