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

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/mines"
)

func testConfig(mode, file string) *config.Config {
	return &config.Config{
		Mode:  mode,
		Board: mines.DefaultParams,
		Log:   config.LogConfig{File: file, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(testConfig(config.ModeDevelopment, ""), &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log, err = New(testConfig(config.ModeProduction, ""), &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFileHook(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "mines.log")

	log, err := New(testConfig(config.ModeProduction, path), &buf)
	require.NoError(t, err)

	log.WithField("seed", "10:10:10").Info("new game")
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "new game", entry["msg"])
	assert.Equal(t, "10:10:10", entry["seed"])
}

func TestAdopt(t *testing.T) {
	var buf bytes.Buffer
	src, err := New(testConfig(config.ModeProduction, ""), &buf)
	require.NoError(t, err)

	dst := logrus.New()
	Adopt(dst, src)
	dst.Debug("hidden")
	dst.Info("adopted")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "adopted")
}
