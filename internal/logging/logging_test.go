package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

func TestNewProduction(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&config.Logging{}, &buf)
	require.NoError(t, err)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Debug("hidden")
	log.WithField("rows", 9).Info("game created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "game created", entry["msg"])
	assert.Equal(t, float64(9), entry["rows"])
}

func TestNewDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&config.Logging{Development: true}, &buf)
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.Debug("cascade settled")
	assert.Contains(t, buf.String(), "cascade settled")
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	log, err := New(&config.Logging{
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}, &bytes.Buffer{})
	require.NoError(t, err)

	log.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
