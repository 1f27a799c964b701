package models

import "time"

// EndpointClass groups endpoints sharing one rate limit budget.
type EndpointClass string

const (
	// ClassRegistration covers form submissions and password checks.
	ClassRegistration EndpointClass = "registration"
)

// RateLimitResult represents the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when not allowed
}

// Key builds the bucket key for a client IP within an endpoint class.
func Key(class EndpointClass, ip string) string {
	return "ratelimit:" + string(class) + ":ip:" + ip
}
