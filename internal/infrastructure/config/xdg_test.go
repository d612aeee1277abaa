package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths_XDG(t *testing.T) {
	root := isolateXDG(t)

	p, err := ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "config", "dockyard"), p.ConfigDir)
	assert.Equal(t, filepath.Join(root, "config", "dockyard", "config.toml"), p.ConfigFile())
	assert.Equal(t, filepath.Join(root, "data", "dockyard", "dockyard.sqlite"), p.DatabaseFile())
	assert.Equal(t, filepath.Join(root, "state", "dockyard", "logs"), p.LogDir())

	require.NoError(t, p.Ensure())
	assert.DirExists(t, p.DataDir)
	assert.DirExists(t, p.StateDir)
}

func TestResolvePaths_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")

	p, err := ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "dockyard"), p.ConfigDir)
	assert.Equal(t, filepath.Join(home, ".local", "share", "dockyard"), p.DataDir)
	assert.Equal(t, filepath.Join(home, ".local", "state", "dockyard"), p.StateDir)
}

func TestResolvePaths_Dev(t *testing.T) {
	isolateXDG(t)
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)

	p, err := ResolvePaths()
	require.NoError(t, err)

	dev := filepath.Join(cwd, ".dev", "dockyard")
	assert.Equal(t, Paths{ConfigDir: dev, DataDir: dev, StateDir: dev}, p)
}
