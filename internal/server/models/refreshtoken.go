package models

import "time"

// RefreshToken is one stored, single-use refresh token. A user may hold
// several, one per signed-in client.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
