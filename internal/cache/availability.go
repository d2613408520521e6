package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/lumina-beauty/booking-api/internal/models"
)

const availabilityTTL = 30 * time.Second

// AvailabilityCache keeps the hot "open slots for service X on date Y" read
// view in redis. It is purely an accelerator: every booking mutation
// invalidates the key, and a nil cache (no REDIS_ADDR configured) degrades to
// hitting postgres every time.
type AvailabilityCache struct {
	client *redis.Client
}

// NewAvailabilityCache returns nil when addr is empty; all methods tolerate a
// nil receiver.
func NewAvailabilityCache(addr string) *AvailabilityCache {
	if addr == "" {
		return nil
	}
	return &AvailabilityCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(serviceID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", serviceID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	serviceID uint,
	date string,
) ([]models.Slot, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(serviceID, date)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("availability cache get:", err)
		}
		return nil, false
	}

	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	serviceID uint,
	date string,
	slots []models.Slot,
) {

	if c == nil {
		return
	}

	b, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(serviceID, date), b, availabilityTTL).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	serviceID uint,
	date string,
) {

	if c == nil {
		return
	}

	if err := c.client.Del(ctx, key(serviceID, date)).Err(); err != nil {
		log.Println("availability cache invalidate:", err)
	}
}
