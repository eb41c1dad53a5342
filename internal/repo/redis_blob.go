package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const maxTxRetries = 5

var errTxContention = errors.New("redis: too much contention on key")

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// loadBlob decodes the JSON stored under key into dst. A missing key leaves dst untouched.
func loadBlob(ctx context.Context, c getter, key string, dst any) error {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// updateBlob runs a read-modify-write of the JSON value under key inside an
// optimistic WATCH transaction, retrying when another writer got there first.
func updateBlob(ctx context.Context, rdb *redis.Client, key string, mutate func(tx *redis.Tx) (any, error)) error {
	txf := func(tx *redis.Tx) error {
		next, err := mutate(tx)
		if err != nil {
			return err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for range maxTxRetries {
		err := rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return errTxContention
}
