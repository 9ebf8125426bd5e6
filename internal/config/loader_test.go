package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"GOOGLE_API_KEY",
	"GEMINI_API_KEY",
	"FINSLIDES_AI_PROVIDER",
	"FINSLIDES_AI_MODEL",
	"FINSLIDES_AI_BASE_URL",
	"FINSLIDES_DOCUMENT_ACCEPT",
	"FINSLIDES_DOCUMENT_MAX_SIZE_MB",
	"FINSLIDES_LOG_LEVEL",
	"FINSLIDES_LOG_JSON",
}

// clearEnv unsets the loader's variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		prev, ok := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if ok {
				os.Setenv(k, prev)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func testLoader(dir string) *Loader {
	return &Loader{
		configPaths: []string{filepath.Join(dir, "project.yaml"), filepath.Join(dir, "user.yaml")},
		envFiles:    []string{filepath.Join(dir, ".env")},
		warn:        func(string, error) {},
	}
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig(t *testing.T) {
	t.Run("Should return defaults when nothing is configured", func(t *testing.T) {
		clearEnv(t)
		cfg, err := testLoader(t.TempDir()).LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("Should let the project file win over the user file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		write(t, filepath.Join(dir, "user.yaml"), "ai:\n  model: user-model\nlog:\n  level: debug\n")
		write(t, filepath.Join(dir, "project.yaml"), "ai:\n  model: project-model\n")

		cfg, err := testLoader(dir).LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "project-model", cfg.AI.Model)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("Should skip a broken file and keep going", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		write(t, filepath.Join(dir, "user.yaml"), "ai: [not a map")
		cfg, err := testLoader(dir).LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "gemini-flash-latest", cfg.AI.Model)
	})

	t.Run("Should read the API key from .env", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		write(t, filepath.Join(dir, ".env"), "GEMINI_API_KEY=from-dotenv\n")
		cfg, err := testLoader(dir).LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.AI.APIKey)
	})

	t.Run("Should apply environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GOOGLE_API_KEY", "google")
		t.Setenv("GEMINI_API_KEY", "gemini")
		t.Setenv("FINSLIDES_DOCUMENT_ACCEPT", "image/*, application/pdf")
		t.Setenv("FINSLIDES_DOCUMENT_MAX_SIZE_MB", "25")
		t.Setenv("FINSLIDES_LOG_JSON", "true")

		cfg, err := testLoader(t.TempDir()).LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.AI.APIKey)
		assert.Equal(t, []string{"image/*", "application/pdf"}, cfg.Document.Accept)
		assert.Equal(t, 25, cfg.Document.MaxSizeMB)
		assert.True(t, cfg.Log.JSON)
	})

	t.Run("Should reject an invalid environment value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("FINSLIDES_DOCUMENT_MAX_SIZE_MB", "ten")
		_, err := testLoader(t.TempDir()).LoadConfig("")
		assert.ErrorContains(t, err, "FINSLIDES_DOCUMENT_MAX_SIZE_MB")
	})

	t.Run("Should fail on a missing custom path", func(t *testing.T) {
		clearEnv(t)
		_, err := testLoader(t.TempDir()).LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Should validate the merged result", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		custom := filepath.Join(dir, "custom.yaml")
		write(t, custom, "log:\n  level: loud\n")
		_, err := testLoader(dir).LoadConfig(custom)
		assert.ErrorContains(t, err, "invalid log level")
	})
}
