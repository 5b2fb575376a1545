package models

import "time"

// Session describes the signed-in user. ExpiresAt is the access token expiry.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}
