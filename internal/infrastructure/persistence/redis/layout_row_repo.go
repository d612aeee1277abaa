package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

type layoutRowRepo struct {
	client goredis.UniversalClient
	prefix string
}

// NewLayoutRowRepository creates a Redis-backed layout row repository.
// Table t lives in the hash prefix+t.
func NewLayoutRowRepository(client goredis.UniversalClient, prefix string) repository.LayoutRowRepository {
	return &layoutRowRepo{client: client, prefix: prefix}
}

func (r *layoutRowRepo) key(table string) string {
	return r.prefix + table
}

func (r *layoutRowRepo) LoadRows(ctx context.Context, table string) (map[string]string, error) {
	rows, err := r.client.HGetAll(ctx, r.key(table)).Result()
	if err != nil {
		return nil, fmt.Errorf("load layout rows: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("key", r.key(table)).Int("rows", len(rows)).Msg("loaded layout rows")
	return rows, nil
}

func (r *layoutRowRepo) SaveRow(ctx context.Context, table, key, value string) error {
	if err := r.client.HSet(ctx, r.key(table), key, value).Err(); err != nil {
		return fmt.Errorf("save layout row: %w", err)
	}
	return nil
}

func (r *layoutRowRepo) DeleteRows(ctx context.Context, table string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.HDel(ctx, r.key(table), keys...).Err(); err != nil {
		return fmt.Errorf("delete layout rows: %w", err)
	}
	return nil
}
