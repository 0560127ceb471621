package domain

import "errors"

// Authentication and authorization failures. All of these are terminal,
// user-visible errors mapped to HTTP statuses at the API boundary; none
// are retried internally.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
)

// Webhook authenticity failures. Kept distinct so the error handler can
// reject without hinting at which check failed beyond header presence.
var (
	ErrMissingSignature = errors.New("missing signature")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Savings plan failures.
var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrInvalidTransition = errors.New("invalid plan status transition")
	ErrDuplicateEvent    = errors.New("event already processed")
)
