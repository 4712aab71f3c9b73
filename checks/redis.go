package checks

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jonwraymond/healthops/health"
)

// Redis verifies a Redis connection with a PING.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis creates a checker over an existing Redis client. The checker does
// not own the client and never closes it.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Check implements health.Checker.
func (r *Redis) Check(ctx context.Context) health.Result {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return health.Unhealthy("redis ping failed", err)
	}
	return health.Healthy("redis reachable")
}
