// Package snapshot saves the live layout in the background, debouncing
// bursts of structural edits into one write.
package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	defaultInterval  = 2 * time.Second
	transientRetries = 2
)

// Store persists a captured layout under a setup name.
// *usecase.ManageLayoutUseCase satisfies it.
type Store interface {
	Store(ctx context.Context, name string, doc *entity.LayoutDocument) error
}

// Service writes the most recent captured layout once edits have been
// quiet for the interval. A document stays pending until a write of it
// (or of a newer one) succeeds.
type Service struct {
	store      Store
	setup      string
	interval   time.Duration
	retryDelay time.Duration

	// writing serializes flushes so an older document never lands last.
	writing sync.Mutex

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	timer   *time.Timer
	pending *entity.LayoutDocument
	seq     uint64 // bumped by every MarkDirty
	dirty   bool
}

// NewService creates an autosaver for setup. intervalMs <= 0 uses two seconds.
func NewService(store Store, setup string, intervalMs int) *Service {
	interval := time.Duration(intervalMs) * time.Millisecond
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		store:      store,
		setup:      setup,
		interval:   interval,
		retryDelay: 50 * time.Millisecond,
	}
}

// Start enables timer-driven writes until ctx ends or Stop is called.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("layout autosave started")
}

// Stop disarms the timer and writes whatever is pending.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.disarmLocked()
	s.mu.Unlock()
	return s.flush(ctx)
}

// MarkDirty replaces the pending document and restarts the quiet period.
// doc must not be mutated afterwards.
func (s *Service) MarkDirty(doc *entity.LayoutDocument) {
	if doc == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending, s.dirty = doc, true
	s.seq++
	if s.timer == nil {
		s.timer = time.AfterFunc(s.interval, s.onTimer)
	} else {
		s.timer.Reset(s.interval)
	}
}

// SaveNow writes the pending document without waiting.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	s.disarmLocked()
	s.mu.Unlock()
	return s.flush(ctx)
}

// Dirty reports whether a document is waiting to be written.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Service) disarmLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) onTimer() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}
	if err := s.flush(ctx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("setup", s.setup).Msg("autosave failed")
	}
}

func (s *Service) flush(ctx context.Context) error {
	s.writing.Lock()
	defer s.writing.Unlock()

	s.mu.Lock()
	doc, seq, dirty := s.pending, s.seq, s.dirty
	s.mu.Unlock()
	if !dirty || doc == nil {
		return nil
	}

	if err := s.write(ctx, doc); err != nil {
		return err
	}

	s.mu.Lock()
	if s.seq == seq {
		s.dirty = false
	}
	s.mu.Unlock()
	return nil
}

// write stores doc, retrying while the database reports busy.
func (s *Service) write(ctx context.Context, doc *entity.LayoutDocument) error {
	err := s.store.Store(ctx, s.setup, doc)
	for attempt := 1; err != nil && isTransient(err) && attempt <= transientRetries; attempt++ {
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt).Msg("retrying autosave")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryDelay):
		}
		err = s.store.Store(ctx, s.setup, doc)
	}
	return err
}

// isTransient matches a busy or locked SQLite database.
func isTransient(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}
