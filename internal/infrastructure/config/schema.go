package config

// StorageBackend selects where layout rows are kept.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendRedis  StorageBackend = "redis"
)

// Config is the dockyard configuration file.
type Config struct {
	Dock     DockConfig     `mapstructure:"dock" yaml:"dock" toml:"dock" json:"dock"`
	Storage  StorageConfig  `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Redis    RedisConfig    `mapstructure:"redis" yaml:"redis" toml:"redis" json:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Blocks is the catalog the host offers. Order is the default layout order.
	Blocks []BlockConfig `mapstructure:"blocks" yaml:"blocks" toml:"blocks" json:"blocks"`
}

// DockConfig holds the chrome metrics and interaction thresholds, in host units.
type DockConfig struct {
	HeaderHeight        int     `mapstructure:"header_height" yaml:"header_height" toml:"header_height" json:"header_height"`
	TabMaxWidth         int     `mapstructure:"tab_max_width" yaml:"tab_max_width" toml:"tab_max_width" json:"tab_max_width"`
	ButtonSize          int     `mapstructure:"button_size" yaml:"button_size" toml:"button_size" json:"button_size"`
	EdgeThickness       int     `mapstructure:"edge_thickness" yaml:"edge_thickness" toml:"edge_thickness" json:"edge_thickness"`
	SnapDistance        int     `mapstructure:"snap_distance" yaml:"snap_distance" toml:"snap_distance" json:"snap_distance"`
	DragThreshold       int     `mapstructure:"drag_threshold" yaml:"drag_threshold" toml:"drag_threshold" json:"drag_threshold"`
	QuadrantStrip       float64 `mapstructure:"quadrant_strip" yaml:"quadrant_strip" toml:"quadrant_strip" json:"quadrant_strip"`
	DefaultMinWidth     int     `mapstructure:"default_min_width" yaml:"default_min_width" toml:"default_min_width" json:"default_min_width"`
	DefaultMinHeight    int     `mapstructure:"default_min_height" yaml:"default_min_height" toml:"default_min_height" json:"default_min_height"`
	MaxPropagationDepth int     `mapstructure:"max_propagation_depth" yaml:"max_propagation_depth" toml:"max_propagation_depth" json:"max_propagation_depth"`
}

// BlockConfig declares one catalog entry.
type BlockConfig struct {
	ID        string `mapstructure:"id" yaml:"id" toml:"id" json:"id"`
	Kind      string `mapstructure:"kind" yaml:"kind" toml:"kind" json:"kind"`
	Title     string `mapstructure:"title" yaml:"title" toml:"title" json:"title"`
	MinWidth  int    `mapstructure:"min_width" yaml:"min_width" toml:"min_width" json:"min_width"`
	MinHeight int    `mapstructure:"min_height" yaml:"min_height" toml:"min_height" json:"min_height"`
	// Visible blocks are part of the default layout.
	Visible bool `mapstructure:"visible" yaml:"visible" toml:"visible" json:"visible"`
}

// StorageConfig selects the layout store.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend"`
	// ActiveSetup is the row key of the layout restored at startup.
	ActiveSetup string `mapstructure:"active_setup" yaml:"active_setup" toml:"active_setup" json:"active_setup"`
	Table       string `mapstructure:"table" yaml:"table" toml:"table" json:"table"`
	// AutosaveIntervalMs debounces writes after layout changes. 0 disables autosave.
	AutosaveIntervalMs int `mapstructure:"autosave_interval_ms" yaml:"autosave_interval_ms" toml:"autosave_interval_ms" json:"autosave_interval_ms"`
}

// DatabaseConfig holds the sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// RedisConfig holds the redis settings.
type RedisConfig struct {
	Addr      string `mapstructure:"addr" yaml:"addr" toml:"addr" json:"addr"`
	Password  string `mapstructure:"password" yaml:"password" toml:"password" json:"password"`
	DB        int    `mapstructure:"db" yaml:"db" toml:"db" json:"db"`
	KeyPrefix string `mapstructure:"key_prefix" yaml:"key_prefix" toml:"key_prefix" json:"key_prefix"`
}

// LoggingConfig holds the log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`
}
