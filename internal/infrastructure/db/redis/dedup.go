package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupChecker provides idempotency checks for gateway event delivery,
// backed by Redis. Key format: gwevent:<event_id>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this event id has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, eventID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after ttl).
func (d *DedupChecker) Mark(ctx context.Context, eventID string, ttl time.Duration) error {
	return d.client.Set(ctx, d.key(eventID), "1", ttl).Err()
}

func (d *DedupChecker) key(eventID string) string {
	return "gwevent:" + eventID
}
