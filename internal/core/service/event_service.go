package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nestera/savings-api/internal/api/metrics"
	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/ports"
)

const dedupTTL = time.Hour

// EventService applies verified gateway events to savings plans. The
// gateway delivers at-least-once; the dedup checker makes processing
// idempotent per event id. Events are never retried here: a failed apply
// is logged and counted by the caller, and the gateway's redelivery plus
// dedup handles the rest.
type EventService struct {
	plans ports.PlanRepository
	dedup ports.DedupChecker
}

func NewEventService(plans ports.PlanRepository, dedup ports.DedupChecker) *EventService {
	return &EventService{plans: plans, dedup: dedup}
}

func (s *EventService) Process(ctx context.Context, event domain.GatewayEvent) error {
	seen, err := s.dedup.IsDuplicate(ctx, event.EventID)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("dedup_check_failed").Inc()
		return fmt.Errorf("dedup check: %w", err)
	}
	if seen {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	target, ok := event.Type.TargetStatus()
	if !ok {
		metrics.EventsErrorsTotal.WithLabelValues("unknown_event_type").Inc()
		return fmt.Errorf("unknown gateway event type %q", event.Type)
	}

	plan, err := s.plans.FindByID(ctx, event.PlanID)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("plan_not_found").Inc()
		return fmt.Errorf("find plan %s: %w", event.PlanID, err)
	}

	if !plan.Status.CanTransitionTo(target) {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return fmt.Errorf("plan %s: %s -> %s: %w", plan.ID, plan.Status, target, domain.ErrInvalidTransition)
	}

	if err := s.plans.UpdateStatus(ctx, plan.ID, target, event.TxHash); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("update_failed").Inc()
		return fmt.Errorf("update plan %s: %w", plan.ID, err)
	}

	// Mark after the write so a crash in between causes a redelivery
	// retry rather than a lost event.
	if err := s.dedup.Mark(ctx, event.EventID, dedupTTL); err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("dedup_mark_failed").Inc()
		return fmt.Errorf("dedup mark: %w", err)
	}

	metrics.EventsProcessedTotal.WithLabelValues(string(event.Type)).Inc()
	return nil
}
