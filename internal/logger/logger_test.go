package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel("info"))
	assert.Equal(t, log.InfoLevel, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	t.Run("Should write JSON records with fields", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&Config{Level: "info", JSON: true, Output: &buf})
		l.Info("analysis finished", "slides", 3)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "analysis finished", rec["msg"])
		assert.Equal(t, float64(3), rec["slides"])
	})

	t.Run("Should filter below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&Config{Level: "warn", Output: &buf})
		l.Info("hidden")
		assert.Empty(t, buf.String())
		l.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})
}
