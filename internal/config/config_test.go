// internal/config/config_test.go
package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "GuilhermeStracini", cfg.GithubOrg)
	assert.Equal(t, "https://api.github.com/", cfg.GithubAPIURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "pt-BR", cfg.LocaleTag.String())
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestLoadConfig_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GITHUB_ORG", "acme")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("LOCALE", "en-US")
	t.Setenv("TIME_ZONE", "America/Sao_Paulo")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.GithubOrg)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "en-US", cfg.LocaleTag.String())
	assert.Equal(t, "America/Sao_Paulo", cfg.Location.String())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad locale", "LOCALE", "not a locale!"},
		{"bad time zone", "TIME_ZONE", "Mars/Olympus"},
		{"negative timeout", "FETCH_TIMEOUT", "-1s"},
		{"blank org", "GITHUB_ORG", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "debug"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "bogus"}).SlogLevel())
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
