package handler

import "time"

type gatewayEventRequest struct {
	EventID    string    `json:"event_id"    validate:"required"`
	Type       string    `json:"type"        validate:"required,oneof=plan.funded plan.matured plan.withdrawn plan.failed"`
	PlanID     string    `json:"plan_id"     validate:"required"`
	TxHash     string    `json:"tx_hash"     validate:"required"`
	Ledger     int64     `json:"ledger"      validate:"required"`
	OccurredAt time.Time `json:"occurred_at" validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}
