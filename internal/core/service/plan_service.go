package service

import (
	"context"
	"time"

	"github.com/nestera/savings-api/internal/api/metrics"
	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/ports"
)

// PlanService implements the savings plan operations. Plans are created
// pending; only gateway events move them forward.
type PlanService struct {
	repo ports.PlanRepository
}

func NewPlanService(repo ports.PlanRepository) *PlanService {
	return &PlanService{repo: repo}
}

func (s *PlanService) Create(ctx context.Context, userID string, in ports.CreatePlanInput) (*domain.Plan, error) {
	now := time.Now().UTC()
	plan := &domain.Plan{
		UserID:        userID,
		Type:          in.Type,
		AmountStroops: in.AmountStroops,
		DurationDays:  in.DurationDays,
		Status:        domain.PlanPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}

	metrics.PlansCreatedTotal.WithLabelValues(string(created.Type)).Inc()
	return created, nil
}

func (s *PlanService) ListByUser(ctx context.Context, userID string) ([]domain.Plan, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *PlanService) ListAll(ctx context.Context) ([]domain.Plan, error) {
	return s.repo.ListAll(ctx)
}
