package ports

import (
	"context"
	"time"

	"github.com/nestera/savings-api/internal/core/domain"
)

// EventService applies verified gateway events to savings plans.
type EventService interface {
	Process(ctx context.Context, event domain.GatewayEvent) error
}

// DedupChecker provides idempotency checks for gateway event delivery.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string, ttl time.Duration) error
}
