package config

import (
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/dockyard/internal/logging"
)

// Watch reloads the config whenever the file changes on disk. Invalid
// edits are logged and the previous config stays current.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.watching {
		m.viper.OnConfigChange(m.handleConfigEvent)
		m.viper.WatchConfig()
		m.watching = true
	}
	return nil
}

// OnConfigChange subscribes fn to every successful reload. fn receives a
// copy it may keep.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

func (m *Manager) handleConfigEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Stringer("op", e.Op).Str("file", e.Name).Msg("config file changed")

	cfg, subscribers, err := m.reload()
	if err != nil {
		log.Warn().Err(err).Msg("config reload rejected")
		return
	}
	for _, fn := range subscribers {
		fn(cfg.clone())
	}
}

// reload re-reads the file and returns the new config with a snapshot of
// the subscribers. After our own Save the in-memory config is already
// current; viper is only resynced.
func (m *Manager) reload() (*Config, []func(*Config), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		if !m.ignoreWrite {
			return nil, nil, err
		}
		log := logging.NewFromEnv()
		log.Warn().Err(err).Msg("resync viper after save")
	}

	if m.ignoreWrite {
		m.ignoreWrite = false
	} else {
		cfg, err := m.decode()
		if err != nil {
			return nil, nil, err
		}
		m.config = cfg
	}
	return m.config, slices.Clone(m.subscribers), nil
}
