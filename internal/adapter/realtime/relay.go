package realtime

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisRelay fans events out across API instances. Every instance publishes
// to Redis and delivers to its local hub whatever its pattern subscription
// receives, its own messages included.
type RedisRelay struct {
	client     *redis.Client
	prefix     string
	hub        *Hub
	subscribed atomic.Bool
}

var _ Publisher = (*RedisRelay)(nil)

func NewRedisRelay(client *redis.Client, prefix string, hub *Hub) *RedisRelay {
	return &RedisRelay{client: client, prefix: prefix, hub: hub}
}

// Publish delivers to the local hub directly when Redis is unreachable or
// when this instance has no active subscription to receive its own message.
func (r *RedisRelay) Publish(ctx context.Context, group string, payload []byte) {
	local := !r.subscribed.Load()
	if err := r.client.Publish(ctx, r.prefix+group, payload).Err(); err != nil {
		zap.L().Warn("redis publish failed, delivering locally",
			zap.String("group", group),
			zap.Error(err),
		)
		local = true
	}
	if local {
		r.hub.Deliver(group, payload)
	}
}

// Serve keeps the subscription alive until ctx is cancelled, subscribing
// again after retryDelay whenever it fails. Redis errors are logged, never
// returned.
func (r *RedisRelay) Serve(ctx context.Context, retryDelay time.Duration) {
	for {
		err := r.Run(ctx, nil)
		if ctx.Err() != nil {
			return
		}
		zap.L().Warn("redis relay stopped, subscribing again",
			zap.Duration("retry_in", retryDelay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}
}

// Run forwards relayed messages into the local hub until ctx is cancelled.
// ready, when non-nil, is closed once the subscription is active.
func (r *RedisRelay) Run(ctx context.Context, ready chan<- struct{}) error {
	pubsub := r.client.PSubscribe(ctx, r.prefix+"*")
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s*: %w", r.prefix, err)
	}
	r.subscribed.Store(true)
	defer r.subscribed.Store(false)
	if ready != nil {
		close(ready)
	}
	zap.L().Info("redis relay subscribed", zap.String("pattern", r.prefix+"*"))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			group := strings.TrimPrefix(msg.Channel, r.prefix)
			r.hub.Deliver(group, []byte(msg.Payload))
		}
	}
}
