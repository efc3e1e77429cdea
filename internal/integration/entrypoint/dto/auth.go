package dto

import "time"

// LoginRequest represents the request body for the admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// RateLimitedResponse is returned when login is throttled.
type RateLimitedResponse struct {
	ErrorResponse
	RetryAfter int `json:"retry_after"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}
