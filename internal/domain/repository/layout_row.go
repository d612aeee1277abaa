// Package repository defines persistence interfaces for the dock domain.
package repository

import "context"

// LayoutRowRepository is a key/value row store grouped by table.
// The layout store keeps one serialized document per row.
type LayoutRowRepository interface {
	// LoadRows returns every row of a table keyed by row key.
	// A table without rows yields an empty map and no error.
	LoadRows(ctx context.Context, table string) (map[string]string, error)

	// SaveRow inserts or replaces one row.
	SaveRow(ctx context.Context, table, key, value string) error

	// DeleteRows removes the given rows. Missing keys are ignored.
	DeleteRows(ctx context.Context, table string, keys []string) error
}
