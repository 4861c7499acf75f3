package redis

import (
	"context"

	"payment-webhook-notifier/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// NewHealthCheck reports Redis reachability under the "redis" name.
func NewHealthCheck(client goredis.Cmdable) ports.HealthChecker {
	return ports.NamedCheck{
		DependencyName: "redis",
		PingFunc: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
	}
}
