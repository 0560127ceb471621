package domain

import "time"

// GatewayEventType enumerates the notifications the blockchain gateway
// pushes after a ledger operation settles.
type GatewayEventType string

const (
	EventPlanFunded    GatewayEventType = "plan.funded"
	EventPlanMatured   GatewayEventType = "plan.matured"
	EventPlanWithdrawn GatewayEventType = "plan.withdrawn"
	EventPlanFailed    GatewayEventType = "plan.failed"
)

// TargetStatus maps an event type to the plan status it confirms.
// The second return is false for unknown event types.
func (t GatewayEventType) TargetStatus() (PlanStatus, bool) {
	switch t {
	case EventPlanFunded:
		return PlanActive, true
	case EventPlanMatured:
		return PlanMatured, true
	case EventPlanWithdrawn:
		return PlanWithdrawn, true
	case EventPlanFailed:
		return PlanFailed, true
	default:
		return "", false
	}
}

// GatewayEvent is a signed notification received from the gateway.
// Delivery is at-least-once; EventID is the idempotency key.
type GatewayEvent struct {
	EventID    string
	Type       GatewayEventType
	PlanID     string
	TxHash     string
	Ledger     int64
	OccurredAt time.Time
}
