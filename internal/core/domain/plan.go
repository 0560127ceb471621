package domain

import "time"

// PlanType distinguishes the savings products offered on the ledger.
type PlanType string

const (
	PlanLock     PlanType = "lock"
	PlanAutosave PlanType = "autosave"
)

// PlanStatus represents the lifecycle state of a savings plan. A plan is
// created pending and only advances when the blockchain gateway confirms
// the corresponding on-ledger operation.
type PlanStatus string

const (
	PlanPending   PlanStatus = "pending"
	PlanActive    PlanStatus = "active"
	PlanMatured   PlanStatus = "matured"
	PlanWithdrawn PlanStatus = "withdrawn"
	PlanFailed    PlanStatus = "failed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[PlanStatus][]PlanStatus{
	PlanPending: {PlanActive, PlanFailed},
	PlanActive:  {PlanMatured},
	PlanMatured: {PlanWithdrawn},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s PlanStatus) CanTransitionTo(next PlanStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Plan is a user's savings plan. Amounts are stroops (1e-7 of the ledger
// asset) to avoid floating point on money.
type Plan struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Type          PlanType   `json:"type"`
	AmountStroops int64      `json:"amount_stroops"`
	DurationDays  int        `json:"duration_days"`
	Status        PlanStatus `json:"status"`
	TxHash        string     `json:"tx_hash,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
