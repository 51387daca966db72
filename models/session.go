package models

import "time"

// Session is the server-side record behind a login cookie.
type Session struct {
	ID        string    `json:"id"`
	Usuario   string    `json:"usuario"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
