package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/bnema/dockyard/internal/logging"
)

const dbDirPerm = 0o750

// Pragmas set on every connection through the DSN. busy_timeout covers an
// autosave overlapping a CLI command on the same file.
var connectionPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(wal)",
	"synchronous(normal)",
	"temp_store(memory)",
}

// dsn builds a file: URI carrying the connection pragmas.
func dsn(dbPath string) string {
	q := url.Values{}
	for _, p := range connectionPragmas {
		q.Add("_pragma", p)
	}
	q.Set("_txlock", "immediate")
	return (&url.URL{Scheme: "file", OmitHost: true, Path: dbPath, RawQuery: q.Encode()}).String()
}

// NewConnection opens the layout database at dbPath, creating the parent
// directory, and migrates it.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer; the connection lives as long as the process.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s: %w", dbPath, err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Debug().Str("path", dbPath).Msg("layout database ready")
	return db, nil
}
