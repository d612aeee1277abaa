package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("DOCKYARD_LOG_LEVEL", "error")
	return root
}

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	app, err := NewApp(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestNewApp_DefaultLayoutThenRoundTrip(t *testing.T) {
	isolate(t)
	ctx := context.Background()

	app := newTestApp(t, Options{})
	out, err := app.RestoreActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, out, "nothing stored yet")
	assert.Len(t, app.Dock.ReachablePanels(), len(app.DefaultBlocks()))

	app.Dock.Panel(app.Dock.ReachablePanels()[0]).Locked = true
	_, err = app.LayoutUC.Save(ctx, app.Dock)
	require.NoError(t, err)
	require.NoError(t, app.Close())

	again := newTestApp(t, Options{})
	out, err = again.RestoreActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out.Skipped)
	panels := again.Dock.ReachablePanels()
	require.Len(t, panels, 3)
	assert.True(t, again.Dock.Panel(panels[0]).Locked)
}

func TestNewApp_CatalogFromConfig(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[storage]
autosave_interval_ms = 0

[[blocks]]
id = "a"
kind = "notes"
title = "Alpha"
min_width = 9
visible = true

[[blocks]]
id = "b"
kind = "clock"
`), 0o644))

	app := newTestApp(t, Options{ConfigFile: path})

	assert.Equal(t, []entity.BlockID{"a", "b"}, app.CatalogBlocks())
	assert.Equal(t, []entity.BlockID{"a"}, app.DefaultBlocks())
	require.NotNil(t, app.Dock.Block("a"))
	assert.Equal(t, "Alpha", app.Dock.Block("a").Title)
	assert.Equal(t, 9, app.Dock.Block("a").MinWidth)
	assert.Equal(t, app.Config.Dock.DefaultMinWidth, app.Dock.Block("b").MinWidth)
	assert.Nil(t, app.NewAutosave(context.Background()), "interval 0 disables autosave")
}

func TestNewApp_InvalidConfig(t *testing.T) {
	root := isolate(t)
	path := filepath.Join(root, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage]\nbackend = \"redis\"\n[redis]\naddr = \"\"\n"), 0o644))

	_, err := NewApp(Options{ConfigFile: path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis.addr")
}

func TestNewApp_RedisBackend(t *testing.T) {
	isolate(t)
	mr := miniredis.RunT(t)
	t.Setenv("DOCKYARD_STORAGE_BACKEND", "redis")
	t.Setenv("DOCKYARD_REDIS_ADDR", mr.Addr())
	ctx := context.Background()

	app := newTestApp(t, Options{})
	require.Equal(t, config.StorageBackendRedis, app.Config.Storage.Backend)
	_, err := app.RestoreActive(ctx)
	require.NoError(t, err)
	_, err = app.LayoutUC.Save(ctx, app.Dock)
	require.NoError(t, err)

	assert.True(t, mr.Exists("dockyard:dock_layout"))
	assert.NotEmpty(t, mr.HGet("dockyard:dock_layout", "active"))
}

func TestNewApp_LogToFile(t *testing.T) {
	root := isolate(t)

	app := newTestApp(t, Options{LogToFile: true})
	require.NoError(t, app.Close())

	assert.FileExists(t, filepath.Join(root, "state", "dockyard", "logs", "dockyard.log"))
}

func TestEngineSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dock.SnapDistance = 5

	s := EngineSettings(cfg)

	assert.Equal(t, 5, s.SnapDistance)
	assert.Equal(t, cfg.Dock.HeaderHeight, s.HeaderHeight)
	assert.InDelta(t, cfg.Dock.QuadrantStrip, s.QuadrantStrip, 1e-9)
	assert.Equal(t, cfg.Dock.MaxPropagationDepth, s.MaxPropagationDepth)
}
