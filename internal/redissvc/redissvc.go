package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb    *redis.Client
	ctx    context.Context
	prefix string
}

func NewRedisService(rdb *redis.Client, ctx context.Context, prefix string) *RedisService {
	return &RedisService{
		rdb:    rdb,
		ctx:    ctx,
		prefix: prefix,
	}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

// Key namespaces name under the configured prefix, e.g. "inventory:assets".
func (a *RedisService) Key(name string) string {
	if a.prefix == "" {
		return name
	}
	return a.prefix + ":" + name
}
