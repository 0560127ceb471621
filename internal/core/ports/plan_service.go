package ports

import (
	"context"

	"github.com/nestera/savings-api/internal/core/domain"
)

// CreatePlanInput carries the validated fields for a new savings plan.
type CreatePlanInput struct {
	Type          domain.PlanType
	AmountStroops int64
	DurationDays  int
}

// PlanService exposes the savings plan operations behind the protected
// routes.
type PlanService interface {
	Create(ctx context.Context, userID string, in CreatePlanInput) (*domain.Plan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Plan, error)
	ListAll(ctx context.Context) ([]domain.Plan, error)
}
