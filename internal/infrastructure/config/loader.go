// Package config loads the dockyard configuration from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/dockyard/internal/logging"
)

// Manager owns the current Config. It is safe for concurrent use; the
// watcher swaps the config in place and notifies subscribers.
type Manager struct {
	mu     sync.RWMutex
	viper  *viper.Viper
	paths  Paths
	config *Config

	subscribers []func(*Config)
	watching    bool
	// ignoreWrite suppresses the reload triggered by our own Save.
	ignoreWrite bool
}

// NewManager resolves the XDG paths and prepares viper. Nothing is read
// until Load.
func NewManager() (*Manager, error) {
	paths, err := ResolvePaths()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(configFileName, filepath.Ext(configFileName)))
	v.SetConfigType("toml")
	v.AddConfigPath(paths.ConfigDir)
	v.AddConfigPath(".")

	// storage.backend <- DOCKYARD_STORAGE_BACKEND, and so on.
	v.SetEnvPrefix("DOCKYARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"logging.level":  "DOCKYARD_LOG_LEVEL",
		"logging.format": "DOCKYARD_LOG_FORMAT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	return &Manager{viper: v, paths: paths}, nil
}

// SetConfigFile loads from an explicit path instead of the search paths.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.SetConfigFile(path)
}

// Load reads the config file and the DOCKYARD_* environment. When no file
// exists yet the defaults are written out first.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.paths.Ensure(); err != nil {
		return err
	}
	for _, kv := range defaultKeys(DefaultConfig()) {
		m.viper.SetDefault(kv.key, kv.value)
	}
	if err := m.readOrCreate(); err != nil {
		return err
	}

	cfg, err := m.decode()
	if err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// decode unmarshals what viper last read, fills derived values and
// validates the result.
func (m *Manager) decode() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", m.viper.ConfigFileUsed(), err)
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = m.paths.DatabaseFile()
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (m *Manager) readOrCreate() error {
	err := m.viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		return nil
	case !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read %s: %w", m.configPath(), err)
	}

	path := m.configPath()
	m.viper.SetConfigFile(path)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	log := logging.NewFromEnv()
	log.Info().Str("path", path).Msg("wrote default configuration")

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// configPath is the explicit file if one was set, else the XDG default.
func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.paths.ConfigFile()
}

func normalizeConfig(cfg *Config) {
	clean := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

	if StorageBackend(clean(string(cfg.Storage.Backend))) == StorageBackendRedis {
		cfg.Storage.Backend = StorageBackendRedis
	} else {
		cfg.Storage.Backend = StorageBackendSQLite
	}
	cfg.Storage.ActiveSetup = strings.TrimSpace(cfg.Storage.ActiveSetup)
	cfg.Storage.Table = strings.TrimSpace(cfg.Storage.Table)

	if cfg.Logging.Level = clean(cfg.Logging.Level); cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format = clean(cfg.Logging.Format); cfg.Logging.Format != "json" {
		cfg.Logging.Format = defaultLogFormat
	}

	for i := range cfg.Blocks {
		b := &cfg.Blocks[i]
		b.ID = strings.TrimSpace(b.ID)
		b.Kind = clean(b.Kind)
		if b.Title == "" {
			b.Title = b.ID
		}
		if b.MinWidth <= 0 {
			b.MinWidth = cfg.Dock.DefaultMinWidth
		}
		if b.MinHeight <= 0 {
			b.MinHeight = cfg.Dock.DefaultMinHeight
		}
	}
}

type keyValue struct {
	key   string
	value any
}

// defaultKeys flattens cfg into viper keys, so env overrides apply to
// values that are absent from the file.
func defaultKeys(cfg *Config) []keyValue {
	d, s, r, l := cfg.Dock, cfg.Storage, cfg.Redis, cfg.Logging
	return []keyValue{
		{"dock.header_height", d.HeaderHeight},
		{"dock.tab_max_width", d.TabMaxWidth},
		{"dock.button_size", d.ButtonSize},
		{"dock.edge_thickness", d.EdgeThickness},
		{"dock.snap_distance", d.SnapDistance},
		{"dock.drag_threshold", d.DragThreshold},
		{"dock.quadrant_strip", d.QuadrantStrip},
		{"dock.default_min_width", d.DefaultMinWidth},
		{"dock.default_min_height", d.DefaultMinHeight},
		{"dock.max_propagation_depth", d.MaxPropagationDepth},
		{"storage.backend", string(s.Backend)},
		{"storage.active_setup", s.ActiveSetup},
		{"storage.table", s.Table},
		{"storage.autosave_interval_ms", s.AutosaveIntervalMs},
		{"database.path", cfg.Database.Path},
		{"redis.addr", r.Addr},
		{"redis.password", r.Password},
		{"redis.db", r.DB},
		{"redis.key_prefix", r.KeyPrefix},
		{"logging.level", l.Level},
		{"logging.format", l.Format},
		{"blocks", cfg.Blocks},
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// Save writes cfg to the config file and makes it current.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := WriteConfigOrdered(cfg, m.configPath()); err != nil {
		return err
	}
	if m.watching {
		m.ignoreWrite = true
	}
	m.config = cfg.clone()
	return nil
}

// Paths returns the resolved dockyard directories.
func (m *Manager) Paths() Paths {
	return m.paths
}

// GetConfigFile returns the path of the file in use.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

func (c *Config) clone() *Config {
	out := *c
	out.Blocks = append([]BlockConfig(nil), c.Blocks...)
	return &out
}
