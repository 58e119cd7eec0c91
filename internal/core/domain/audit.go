package domain

import "time"

// Auth event kinds recorded in the audit trail.
const (
	AuthEventLoginSuccess = "login_success"
	AuthEventLoginDenied  = "login_denied"
	AuthEventSignOut      = "signout"
	AuthEventRegistered   = "user_registered"
)

// AuthEvent is a single entry in the authentication audit trail. Events are
// recorded asynchronously and never block or fail the request that produced
// them.
type AuthEvent struct {
	Kind       string    `json:"kind"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
