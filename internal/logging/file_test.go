package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingFile_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := OpenRotatingFile(dir, "dockyard.log", 1, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	r.maxSize = 10
	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := 0; i < 5; i++ {
		_, err := r.Write([]byte("12345678\n"))
		require.NoError(t, err)
	}

	backups, err := filepath.Glob(filepath.Join(dir, "dockyard.log.*"))
	require.NoError(t, err)
	assert.Len(t, backups, 2)

	data, err := os.ReadFile(r.Path())
	require.NoError(t, err)
	assert.Equal(t, "12345678\n", string(data))
}

func TestRotatingFile_AppendsToExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dockyard.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	r, err := OpenRotatingFile(dir, "dockyard.log", 1, 1)
	require.NoError(t, err)
	_, err = r.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel

	logger, cleanup, err := NewWithFile(cfg, dir, "dockyard.log")
	require.NoError(t, err)
	logger.Debug().Str("panel_id", "p1").Msg("hello")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "dockyard.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"panel_id":"p1"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}
