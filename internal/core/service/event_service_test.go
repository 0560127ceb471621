package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nestera/savings-api/internal/core/domain"
)

type stubPlanRepo struct {
	plans   map[string]*domain.Plan
	updates int
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[string]*domain.Plan)}
}

func (r *stubPlanRepo) Create(_ context.Context, plan *domain.Plan) (*domain.Plan, error) {
	clone := *plan
	if clone.ID == "" {
		clone.ID = "plan-1"
	}
	r.plans[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPlanRepo) FindByID(_ context.Context, id string) (*domain.Plan, error) {
	if p, ok := r.plans[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrPlanNotFound
}

func (r *stubPlanRepo) ListByUser(_ context.Context, userID string) ([]domain.Plan, error) {
	var out []domain.Plan
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPlanRepo) ListAll(_ context.Context) ([]domain.Plan, error) {
	var out []domain.Plan
	for _, p := range r.plans {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPlanRepo) UpdateStatus(_ context.Context, id string, status domain.PlanStatus, txHash string) error {
	p, ok := r.plans[id]
	if !ok {
		return domain.ErrPlanNotFound
	}
	p.Status = status
	if txHash != "" {
		p.TxHash = txHash
	}
	r.updates++
	return nil
}

type stubDedup struct {
	seen    map[string]bool
	markErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, eventID string) (bool, error) {
	return d.seen[eventID], nil
}

func (d *stubDedup) Mark(_ context.Context, eventID string, _ time.Duration) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[eventID] = true
	return nil
}

func fundedEvent(planID string) domain.GatewayEvent {
	return domain.GatewayEvent{
		EventID:    "evt-1",
		Type:       domain.EventPlanFunded,
		PlanID:     planID,
		TxHash:     "abc123",
		Ledger:     42,
		OccurredAt: time.Now().UTC(),
	}
}

func TestEventService_AppliesTransition(t *testing.T) {
	repo := newStubPlanRepo()
	repo.plans["plan-1"] = &domain.Plan{ID: "plan-1", Status: domain.PlanPending}
	svc := NewEventService(repo, newStubDedup())

	if err := svc.Process(context.Background(), fundedEvent("plan-1")); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	if repo.plans["plan-1"].Status != domain.PlanActive {
		t.Fatalf("expected plan active, got %s", repo.plans["plan-1"].Status)
	}
	if repo.plans["plan-1"].TxHash != "abc123" {
		t.Fatalf("expected tx hash recorded, got %q", repo.plans["plan-1"].TxHash)
	}
}

func TestEventService_DuplicateSkipped(t *testing.T) {
	repo := newStubPlanRepo()
	repo.plans["plan-1"] = &domain.Plan{ID: "plan-1", Status: domain.PlanPending}
	dedup := newStubDedup()
	svc := NewEventService(repo, dedup)

	if err := svc.Process(context.Background(), fundedEvent("plan-1")); err != nil {
		t.Fatalf("first delivery failed: %v", err)
	}
	if err := svc.Process(context.Background(), fundedEvent("plan-1")); err != nil {
		t.Fatalf("redelivery must be a no-op, got %v", err)
	}
	if repo.updates != 1 {
		t.Fatalf("expected exactly one update, got %d", repo.updates)
	}
}

func TestEventService_InvalidTransition(t *testing.T) {
	repo := newStubPlanRepo()
	repo.plans["plan-1"] = &domain.Plan{ID: "plan-1", Status: domain.PlanWithdrawn}
	svc := NewEventService(repo, newStubDedup())

	err := svc.Process(context.Background(), fundedEvent("plan-1"))
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("invalid transition must not persist, got %d updates", repo.updates)
	}
}

func TestEventService_UnknownPlan(t *testing.T) {
	svc := NewEventService(newStubPlanRepo(), newStubDedup())

	err := svc.Process(context.Background(), fundedEvent("missing"))
	if !errors.Is(err, domain.ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestEventService_UnknownEventType(t *testing.T) {
	repo := newStubPlanRepo()
	repo.plans["plan-1"] = &domain.Plan{ID: "plan-1", Status: domain.PlanPending}
	svc := NewEventService(repo, newStubDedup())

	event := fundedEvent("plan-1")
	event.Type = "plan.exploded"
	if err := svc.Process(context.Background(), event); err == nil {
		t.Fatalf("expected error for unknown event type")
	}
}

func TestEventService_MarkFailureSurfaces(t *testing.T) {
	repo := newStubPlanRepo()
	repo.plans["plan-1"] = &domain.Plan{ID: "plan-1", Status: domain.PlanPending}
	dedup := newStubDedup()
	dedup.markErr = errors.New("redis down")
	svc := NewEventService(repo, dedup)

	if err := svc.Process(context.Background(), fundedEvent("plan-1")); err == nil {
		t.Fatalf("expected mark failure to surface")
	}
}
