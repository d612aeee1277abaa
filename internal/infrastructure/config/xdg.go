package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName        = "dockyard"
	configFileName = "config.toml"
	databaseName   = "dockyard.sqlite"
)

// Paths are the dockyard directories under the XDG base directories:
// $XDG_CONFIG_HOME/dockyard, $XDG_DATA_HOME/dockyard and
// $XDG_STATE_HOME/dockyard, falling back to ~/.config, ~/.local/share and
// ~/.local/state. With ENV=dev all three are .dev/dockyard in the working
// directory.
type Paths struct {
	ConfigDir string
	DataDir   string
	StateDir  string
}

// ResolvePaths reads the environment and returns the dockyard paths.
func ResolvePaths() (Paths, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return Paths{}, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return Paths{ConfigDir: dev, DataDir: dev, StateDir: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve home directory: %w", err)
	}
	base := func(env string, fallback ...string) string {
		if dir := os.Getenv(env); dir != "" {
			return filepath.Join(dir, appName)
		}
		return filepath.Join(append(append([]string{home}, fallback...), appName)...)
	}
	return Paths{
		ConfigDir: base("XDG_CONFIG_HOME", ".config"),
		DataDir:   base("XDG_DATA_HOME", ".local", "share"),
		StateDir:  base("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

// ConfigFile is the default config file location.
func (p Paths) ConfigFile() string { return filepath.Join(p.ConfigDir, configFileName) }

// DatabaseFile is the default sqlite layout store.
func (p Paths) DatabaseFile() string { return filepath.Join(p.DataDir, databaseName) }

// LogDir holds the rotated log files of interactive sessions.
func (p Paths) LogDir() string { return filepath.Join(p.StateDir, "logs") }

// Ensure creates the three directories.
func (p Paths) Ensure() error {
	for _, dir := range []string{p.ConfigDir, p.DataDir, p.StateDir} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
