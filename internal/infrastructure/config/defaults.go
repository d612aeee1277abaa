package config

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// Terminal cells.
	defaultHeaderHeight        = 1
	defaultTabMaxWidth         = 24
	defaultButtonSize          = 1
	defaultEdgeThickness       = 2
	defaultSnapDistance        = 2
	defaultDragThreshold       = 1
	defaultQuadrantStrip       = 0.25
	defaultMinWidth            = 12
	defaultMinHeight           = 4
	defaultMaxPropagationDepth = 8

	defaultActiveSetup        = "active"
	defaultLayoutTable        = "dock_layout"
	defaultAutosaveIntervalMs = 2000

	defaultRedisAddr      = "localhost:6379"
	defaultRedisKeyPrefix = "dockyard:"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Dock: DockConfig{
			HeaderHeight:        defaultHeaderHeight,
			TabMaxWidth:         defaultTabMaxWidth,
			ButtonSize:          defaultButtonSize,
			EdgeThickness:       defaultEdgeThickness,
			SnapDistance:        defaultSnapDistance,
			DragThreshold:       defaultDragThreshold,
			QuadrantStrip:       defaultQuadrantStrip,
			DefaultMinWidth:     defaultMinWidth,
			DefaultMinHeight:    defaultMinHeight,
			MaxPropagationDepth: defaultMaxPropagationDepth,
		},
		Storage: StorageConfig{
			Backend:            StorageBackendSQLite,
			ActiveSetup:        defaultActiveSetup,
			Table:              defaultLayoutTable,
			AutosaveIntervalMs: defaultAutosaveIntervalMs,
		},
		Redis: RedisConfig{
			Addr:      defaultRedisAddr,
			KeyPrefix: defaultRedisKeyPrefix,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Blocks: DefaultBlocks(),
	}
}

// DefaultBlocks returns the demo catalog.
func DefaultBlocks() []BlockConfig {
	return []BlockConfig{
		{ID: "notes", Kind: "notes", Title: "Notes", MinWidth: 20, MinHeight: 6, Visible: true},
		{ID: "clock", Kind: "clock", Title: "Clock", MinWidth: 16, MinHeight: 4, Visible: true},
		{ID: "stats", Kind: "stats", Title: "Stats", MinWidth: 20, MinHeight: 6, Visible: true},
		{ID: "scratch", Kind: "notes", Title: "Scratch", MinWidth: 16, MinHeight: 4, Visible: false},
	}
}
