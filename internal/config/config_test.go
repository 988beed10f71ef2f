package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, cfg.Mode)
	assert.True(t, cfg.Development())
	assert.False(t, cfg.Production())
	assert.Equal(t, mines.DefaultParams, cfg.Board)
	assert.Equal(t, time.Second, cfg.Timer.Interval)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
	assert.Equal(t, 7, cfg.Log.MaxAgeDays)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--height", "16", "--width=30", "--mines", "99",
		"--mode", "production", "--tick", "250ms", "--log-file", "/tmp/mines.log",
	})
	require.NoError(t, err)

	assert.Equal(t, mines.BoardParams{Height: 16, Width: 30, Mines: 99}, cfg.Board)
	assert.True(t, cfg.Production())
	assert.Equal(t, 250*time.Millisecond, cfg.Timer.Interval)
	assert.Equal(t, "/tmp/mines.log", cfg.Log.File)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SWEEPER_BOARD_MINES", "20")
	t.Setenv("SWEEPER_TIMER_INTERVAL", "2s")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Board.Mines)
	assert.Equal(t, 2*time.Second, cfg.Timer.Interval)

	cfg, err = Load([]string{"--mines", "5"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Mines, "flags take precedence over env")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	err := os.WriteFile(path, []byte(`
mode: production
board:
  height: 8
  width: 12
  mines: 15
log:
  file: mines.log
  max_backups: 1
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load([]string{"-c", path})
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, mines.BoardParams{Height: 8, Width: 12, Mines: 15}, cfg.Board)
	assert.Equal(t, "mines.log", cfg.Log.File)
	assert.Equal(t, 1, cfg.Log.MaxBackups)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{name: "no safe cell", args: []string{"--height", "2", "--width", "2", "--mines", "4"}, is: mines.ErrInvalidParams},
		{name: "zero width", args: []string{"--width", "0"}, is: mines.ErrInvalidParams},
		{name: "bad mode", args: []string{"--mode", "staging"}},
		{name: "bad tick", args: []string{"--tick", "0s"}},
		{name: "missing file", args: []string{"--config", "/nonexistent/mines.yaml"}},
		{name: "unknown flag", args: []string{"--depth", "3"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := Load(test.args)
			assert.Nil(t, cfg)
			require.Error(t, err)
			if test.is != nil {
				assert.True(t, errors.Is(err, test.is))
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"--help"})
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestFields(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	fields := cfg.Fields()
	assert.Equal(t, "10:10:10", fields["board"])
	assert.Equal(t, "1s", fields["timer_interval"])
}
