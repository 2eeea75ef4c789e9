package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisService bundles the client with the long-lived context the
// abuse-protection layer uses. Redis holds rate-limit strikes and the
// ban ledger only; the catalog itself is never cached.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

// New connects to the given address and verifies the connection.
func New(addr string) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisService{rdb: rdb, ctx: context.Background()}, nil
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

// Close releases the underlying client.
func (a *RedisService) Close() error {
	return a.rdb.Close()
}
