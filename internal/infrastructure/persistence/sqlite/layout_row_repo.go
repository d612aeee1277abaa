package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

type layoutRowRepo struct {
	db *sql.DB
}

// NewLayoutRowRepository creates a SQLite-backed layout row repository.
// Every logical table shares the layout_rows table, keyed by table_key.
func NewLayoutRowRepository(db *sql.DB) repository.LayoutRowRepository {
	return &layoutRowRepo{db: db}
}

func (r *layoutRowRepo) LoadRows(ctx context.Context, table string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT row_key, value FROM layout_rows WHERE table_key = ?`, table)
	if err != nil {
		return nil, fmt.Errorf("query layout rows: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan layout row: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().Str("table", table).Int("rows", len(out)).Msg("loaded layout rows")
	return out, nil
}

func (r *layoutRowRepo) SaveRow(ctx context.Context, table, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO layout_rows (table_key, row_key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(table_key, row_key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		table, key, value)
	if err != nil {
		return fmt.Errorf("save layout row: %w", err)
	}
	return nil
}

func (r *layoutRowRepo) DeleteRows(ctx context.Context, table string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `DELETE FROM layout_rows WHERE table_key = ? AND row_key = ?`)
	if err != nil {
		return fmt.Errorf("prepare delete: %w", err)
	}
	defer stmt.Close()

	for _, key := range keys {
		if _, err := stmt.ExecContext(ctx, table, key); err != nil {
			return fmt.Errorf("delete layout row %q: %w", key, err)
		}
	}
	return tx.Commit()
}
