package repo

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/asset-inventory/internal/redissvc"
)

// openTestRedis connects to REDIS_ADDR under a fresh key prefix that is
// removed when the test ends. Tests using it are skipped when no server is configured.
func openTestRedis(t *testing.T) *redissvc.RedisService {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, rdb.Ping(ctx).Err())

	prefix := "repo-test-" + uuid.NewString()
	t.Cleanup(func() {
		keys, _ := rdb.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			rdb.Del(ctx, keys...)
		}
		_ = rdb.Close()
	})
	return redissvc.NewRedisService(rdb, ctx, prefix)
}

func TestRedisAssetRepository(t *testing.T) {
	testAssetRepository(t, NewRedisAssetRepository(openTestRedis(t)))
}

func TestRedisCatalogRepository(t *testing.T) {
	testCatalogRepository(t, NewRedisCatalogRepository(openTestRedis(t)))
}

func TestUpdateBlob_ConcurrentWritersLoseNoUpdates(t *testing.T) {
	rs := openTestRedis(t)
	ctx := rs.Ctx()
	key := rs.Key("counter")

	type counter struct {
		N int `json:"n"`
	}

	const writers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := updateBlob(ctx, rs.Rdb(), key, func(tx *redis.Tx) (any, error) {
				var c counter
				if err := loadBlob(ctx, tx, key, &c); err != nil {
					return nil, err
				}
				c.N++
				return c, nil
			})
			if errors.Is(err, errTxContention) {
				return
			}
			assert.NoError(t, err)
			mu.Lock()
			succeeded++
			mu.Unlock()
		}()
	}
	wg.Wait()

	var final counter
	require.NoError(t, loadBlob(ctx, rs.Rdb(), key, &final))
	require.Positive(t, succeeded)
	assert.Equal(t, succeeded, final.N, "every committed increment is kept")
}

func TestUpdateBlob_MutateErrorLeavesValue(t *testing.T) {
	rs := openTestRedis(t)
	ctx := rs.Ctx()
	key := rs.Key("blob")

	require.NoError(t, updateBlob(ctx, rs.Rdb(), key, func(*redis.Tx) (any, error) {
		return []string{"a"}, nil
	}))
	err := updateBlob(ctx, rs.Rdb(), key, func(*redis.Tx) (any, error) {
		return nil, ErrAssetNotFound
	})
	assert.ErrorIs(t, err, ErrAssetNotFound)

	var got []string
	require.NoError(t, loadBlob(ctx, rs.Rdb(), key, &got))
	assert.Equal(t, []string{"a"}, got)
}
