package config

import (
	"fmt"
	"slices"
	"strings"
)

var logLevels = []string{"trace", "debug", "info", "warn", "error", "fatal"}

// problems collects every violation so a broken file is reported in one go.
type problems []string

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Sprintf(format, args...))
	}
}

func (p problems) err() error {
	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(p, "\n  - "))
}

func validateConfig(cfg *Config) error {
	var p problems
	p.dock(cfg.Dock)
	p.blocks(cfg.Blocks)
	p.storage(cfg)
	p.check(slices.Contains(logLevels, cfg.Logging.Level),
		"logging.level must be one of: %s", strings.Join(logLevels, ", "))
	p.check(cfg.Logging.Format == "console" || cfg.Logging.Format == "json",
		"logging.format must be console or json")
	return p.err()
}

func (p *problems) dock(d DockConfig) {
	for _, f := range []struct {
		key   string
		value int
	}{
		{"dock.button_size", d.ButtonSize},
		{"dock.default_min_height", d.DefaultMinHeight},
		{"dock.default_min_width", d.DefaultMinWidth},
		{"dock.drag_threshold", d.DragThreshold},
		{"dock.header_height", d.HeaderHeight},
		{"dock.max_propagation_depth", d.MaxPropagationDepth},
		{"dock.snap_distance", d.SnapDistance},
		{"dock.tab_max_width", d.TabMaxWidth},
	} {
		p.check(f.value >= 0, "%s must be non-negative", f.key)
	}
	p.check(d.EdgeThickness >= 1, "dock.edge_thickness must be at least 1")
	p.check(d.QuadrantStrip > 0 && d.QuadrantStrip <= 0.5, "dock.quadrant_strip must be in (0, 0.5]")
}

func (p *problems) blocks(blocks []BlockConfig) {
	seen := make(map[string]bool, len(blocks))
	for i, b := range blocks {
		if b.ID == "" {
			p.check(false, "blocks[%d].id cannot be empty", i)
			continue
		}
		p.check(!seen[b.ID], "blocks[%d].id %q is duplicated", i, b.ID)
		seen[b.ID] = true
		p.check(b.Kind != "", "blocks[%d].kind cannot be empty", i)
		p.check(b.MinWidth >= 0 && b.MinHeight >= 0, "blocks[%d] minimum sizes must be non-negative", i)
	}
}

func (p *problems) storage(cfg *Config) {
	s := cfg.Storage
	p.check(s.Backend == StorageBackendSQLite || s.Backend == StorageBackendRedis,
		"storage.backend must be %q or %q", StorageBackendSQLite, StorageBackendRedis)
	p.check(s.ActiveSetup != "", "storage.active_setup cannot be empty")
	p.check(s.Table != "", "storage.table cannot be empty")
	p.check(s.AutosaveIntervalMs >= 0, "storage.autosave_interval_ms must be non-negative")
	p.check(s.Backend != StorageBackendRedis || cfg.Redis.Addr != "",
		"redis.addr is required when storage.backend is redis")
	p.check(cfg.Redis.DB >= 0, "redis.db must be non-negative")
}
