package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "WARN", Out: &buf})
	require.NoError(t, err)

	log.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warn("shown", map[string]any{"section": "about"})
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "about", entry["section"])
}

func TestErrorAndWith(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Out: &buf})
	require.NoError(t, err)

	log.With(map[string]any{"component": "clipboard"}).Error(errors.New("denied"), "copy failed", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "denied", entry["error"])
	assert.Equal(t, "clipboard", entry["component"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("x", nil)
		log.Error(errors.New("x"), "x", nil)
		assert.Nil(t, log.With(map[string]any{"a": 1}))
	})
}

func TestComponentAndHumanOutput(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Human: true, Out: &buf})
	require.NoError(t, err)

	log.Component("site").Debug("site built", Fields{"files": 3})
	out := buf.String()
	assert.Contains(t, out, "site built")
	assert.Contains(t, out, "component=")
	assert.Contains(t, out, "files=")
	assert.NotContains(t, out, `"message"`)

	var none *Logger
	assert.Nil(t, none.Component("site"))
}
