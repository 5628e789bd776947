package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(&buf, Config{Level: "debug", Format: FormatJSON}))
	t.Cleanup(func() { _ = InitWithWriter(&bytes.Buffer{}, DefaultConfig()) })

	Component("scales").Info().Str("scale", "tailwind").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scales", entry["component"])
	assert.Equal(t, "tailwind", entry["scale"])
	assert.Equal(t, "loaded", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(&buf, Config{Level: "warn", Format: FormatJSON}))
	t.Cleanup(func() { _ = InitWithWriter(&bytes.Buffer{}, DefaultConfig()) })

	Component("test").Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	Component("test").Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetOutput(t *testing.T) {
	require.NoError(t, InitWithWriter(&bytes.Buffer{}, Config{Level: "info", Format: FormatJSON}))
	t.Cleanup(func() { _ = InitWithWriter(&bytes.Buffer{}, DefaultConfig()) })

	var buf bytes.Buffer
	SetOutput(&buf)
	Logger().Info().Msg("redirected")
	assert.Contains(t, buf.String(), "redirected")
}

func TestInitRejectsInvalidConfig(t *testing.T) {
	assert.Error(t, InitWithWriter(&bytes.Buffer{}, Config{Level: "loud"}))
	assert.Error(t, InitWithWriter(&bytes.Buffer{}, Config{Level: "info", Format: "xml"}))
	assert.NoError(t, InitWithWriter(&bytes.Buffer{}, Config{}))
}
