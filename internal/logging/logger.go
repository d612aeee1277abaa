package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config describes one logger. Format is "console" or "json"; Output
// defaults to stderr.
type Config struct {
	Level      zerolog.Level
	Format     string
	TimeFormat string
	Output     io.Writer
	NoColor    bool
}

// DefaultConfig is info level, colored console output on stderr.
func DefaultConfig() Config {
	return Config{Level: zerolog.InfoLevel, Format: "console", TimeFormat: time.RFC3339}
}

// New builds a timestamped logger from cfg.
func New(cfg Config) zerolog.Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.TimeFormat, NoColor: cfg.NoColor}
	}
	return zerolog.New(w).Level(cfg.Level).With().Timestamp().Logger()
}

var levelAliases = map[string]string{"warning": "warn", "off": "disabled"}

// ParseLevel accepts zerolog level names plus "warning" and "off".
// Anything else, including the empty string, is info.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if alias, ok := levelAliases[level]; ok {
		level = alias
	}
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewFromConfigValues builds a logger from the [logging] config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv reads DOCKYARD_LOG_LEVEL and DOCKYARD_LOG_FORMAT. It serves
// code that runs before the config is loaded.
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DOCKYARD_LOG_LEVEL"), os.Getenv("DOCKYARD_LOG_FORMAT"))
}
