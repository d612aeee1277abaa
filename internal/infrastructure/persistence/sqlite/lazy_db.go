package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

// LazyDB defers NewConnection until a command actually reads or writes
// layouts. A failed open is remembered; later calls return the same error.
type LazyDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	tried   bool
}

// NewLazyDB returns an unopened handle on the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens the database on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tried {
		l.tried = true
		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			logging.FromContext(ctx).Error().Err(l.openErr).Str("path", l.path).Msg("open layout store")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("open layout store: %w", l.openErr)
	}
	return l.db, nil
}

// IsInitialized reports whether the database was opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Close is a no-op when the database was never opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

type lazyLayoutRowRepo struct {
	lazy *LazyDB
}

// NewLazyLayoutRowRepository is a LayoutRowRepository backed by lazy.
func NewLazyLayoutRowRepository(lazy *LazyDB) repository.LayoutRowRepository {
	return lazyLayoutRowRepo{lazy: lazy}
}

func (r lazyLayoutRowRepo) with(ctx context.Context, fn func(repository.LayoutRowRepository) error) error {
	db, err := r.lazy.DB(ctx)
	if err != nil {
		return err
	}
	return fn(NewLayoutRowRepository(db))
}

func (r lazyLayoutRowRepo) LoadRows(ctx context.Context, table string) (rows map[string]string, err error) {
	err = r.with(ctx, func(repo repository.LayoutRowRepository) error {
		rows, err = repo.LoadRows(ctx, table)
		return err
	})
	return rows, err
}

func (r lazyLayoutRowRepo) SaveRow(ctx context.Context, table, key, value string) error {
	return r.with(ctx, func(repo repository.LayoutRowRepository) error {
		return repo.SaveRow(ctx, table, key, value)
	})
}

func (r lazyLayoutRowRepo) DeleteRows(ctx context.Context, table string, keys []string) error {
	return r.with(ctx, func(repo repository.LayoutRowRepository) error {
		return repo.DeleteRows(ctx, table, keys)
	})
}
