package dto

import "time"

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SessionResponse is returned by POST /v1/session. The token is an anonymous
// session credential; clients send it as a Bearer token on every other call.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
