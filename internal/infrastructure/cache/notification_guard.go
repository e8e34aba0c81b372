package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payler_gateway/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultGuardTTL = 24 * time.Hour
	guardOperation  = "notification"
)

// RedisNotificationGuard records applied (order hash, state) pairs in Redis.
type RedisNotificationGuard struct {
	client      redis.Cmdable
	serviceName string
	ttl         time.Duration
}

var _ interfaces.INotificationGuard = (*RedisNotificationGuard)(nil)

func NewRedisNotificationGuard(addr, serviceName string, ttl time.Duration) *RedisNotificationGuard {
	return NewRedisNotificationGuardWithClient(redis.NewClient(&redis.Options{Addr: addr}), serviceName, ttl)
}

func NewRedisNotificationGuardWithClient(client redis.Cmdable, serviceName string, ttl time.Duration) *RedisNotificationGuard {
	if ttl <= 0 {
		ttl = DefaultGuardTTL
	}
	return &RedisNotificationGuard{client: client, serviceName: serviceName, ttl: ttl}
}

func (g *RedisNotificationGuard) Seen(ctx context.Context, orderHash, state string) (bool, error) {
	_, err := g.client.Get(ctx, g.key(orderHash, state)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *RedisNotificationGuard) Remember(ctx context.Context, orderHash, state string) error {
	return g.client.Set(ctx, g.key(orderHash, state), time.Now().UTC().Format(time.RFC3339), g.ttl).Err()
}

func (g *RedisNotificationGuard) key(orderHash, state string) string {
	return fmt.Sprintf("%s:%s:%s:%s", g.serviceName, guardOperation, orderHash, state)
}
