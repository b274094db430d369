package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
)

const availabilityTTL = 60 * time.Second

// AvailabilityCache keeps computed free-slot lists briefly in Redis. A nil
// *AvailabilityCache is a no-op, so callers need no enabled/disabled checks.
type AvailabilityCache struct {
	client *redis.Client
	log    *zap.Logger
}

func NewAvailabilityCache(redisURL string, log *zap.Logger) (*AvailabilityCache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	return &AvailabilityCache{
		client: redis.NewClient(opts),
		log:    log,
	}, nil
}

func key(in domain.AvailabilityInput) string {
	return fmt.Sprintf(
		"availability:%d:%d:%s",
		in.BarberID,
		in.ServiceID,
		in.Date.Format("2006-01-02"),
	)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(in)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("availability cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	in domain.AvailabilityInput,
	slots []domain.TimeSlot,
) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(in), raw, availabilityTTL).Err(); err != nil {
		c.log.Warn("availability cache write failed", zap.Error(err))
	}
}
