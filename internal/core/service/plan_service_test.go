package service

import (
	"context"
	"testing"

	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/ports"
)

func TestPlanService_Create(t *testing.T) {
	repo := newStubPlanRepo()
	svc := NewPlanService(repo)

	plan, err := svc.Create(context.Background(), "user-1", ports.CreatePlanInput{
		Type:          domain.PlanLock,
		AmountStroops: 10_000_000,
		DurationDays:  30,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if plan.Status != domain.PlanPending {
		t.Fatalf("new plan must start pending, got %s", plan.Status)
	}
	if plan.UserID != "user-1" {
		t.Fatalf("unexpected owner: %s", plan.UserID)
	}
	if plan.CreatedAt.IsZero() || plan.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestPlanService_ListByUser(t *testing.T) {
	repo := newStubPlanRepo()
	repo.plans["p1"] = &domain.Plan{ID: "p1", UserID: "user-1"}
	repo.plans["p2"] = &domain.Plan{ID: "p2", UserID: "user-2"}
	svc := NewPlanService(repo)

	plans, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != "p1" {
		t.Fatalf("unexpected plans: %+v", plans)
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(all))
	}
}
