package telemetry

import (
	"context"

	"github.com/pradipta/paystream/internal/pkg/database"
	"github.com/pradipta/paystream/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	successKey = "paystream:transactions:processed:success"
	failureKey = "paystream:transactions:processed:failed"
)

// RedisSink is a Sink backed by Redis counters so counts survive restarts
// and are shared across instances. Increment failures are logged and
// swallowed: telemetry must never fail the pipeline.
type RedisSink struct {
	client *database.RedisClient
}

// NewRedisSink creates a new Redis-backed telemetry sink
func NewRedisSink(client *database.RedisClient) *RedisSink {
	return &RedisSink{client: client}
}

// IncrementSuccess increments the processed-transactions counter
func (s *RedisSink) IncrementSuccess(ctx context.Context) {
	s.increment(ctx, successKey)
}

// IncrementFailure increments the failed-transactions counter
func (s *RedisSink) IncrementFailure(ctx context.Context) {
	s.increment(ctx, failureKey)
}

func (s *RedisSink) increment(ctx context.Context, key string) {
	if _, err := s.client.Incr(ctx, key); err != nil {
		logger.Warn("failed to increment telemetry counter", logrus.Fields{
			"key":   key,
			"error": err.Error(),
		})
	}
}
