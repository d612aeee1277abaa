package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/infrastructure/persistence/redis"
)

func TestLayoutRowRepository_HashPerTable(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	client, err := redis.NewClient(ctx, redis.Config{Addr: srv.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := redis.NewLayoutRowRepository(client, "dockyard:")
	require.NoError(t, repo.SaveRow(ctx, "dock_layout", "active", `{"version":1}`))
	require.NoError(t, repo.SaveRow(ctx, "dock_layout", "coding", `{"version":1}`))
	require.NoError(t, repo.DeleteRows(ctx, "dock_layout", []string{"coding"}))
	require.NoError(t, repo.DeleteRows(ctx, "dock_layout", nil))

	rows, err := repo.LoadRows(ctx, "dock_layout")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"active": `{"version":1}`}, rows)
	assert.Equal(t, `{"version":1}`, srv.HGet("dockyard:dock_layout", "active"))
	assert.False(t, srv.Exists("dockyard:other"))
}

func TestLayoutRowRepository_EmptyTable(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()
	client, err := redis.NewClient(ctx, redis.Config{Addr: srv.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	rows, err := redis.NewLayoutRowRepository(client, "").LoadRows(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNewClient_Errors(t *testing.T) {
	_, err := redis.NewClient(context.Background(), redis.Config{})
	require.Error(t, err)

	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()
	_, err = redis.NewClient(context.Background(), redis.Config{Addr: addr})
	require.Error(t, err)
}
