package ports

import (
	"context"

	"github.com/nestera/savings-api/internal/core/domain"
)

// PlanRepository defines the interface for savings plan persistence.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	FindByID(ctx context.Context, id string) (*domain.Plan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Plan, error)
	ListAll(ctx context.Context) ([]domain.Plan, error)
	// UpdateStatus persists a status transition and, when non-empty, the
	// confirming transaction hash.
	UpdateStatus(ctx context.Context, id string, status domain.PlanStatus, txHash string) error
}
