// Package models defines server-side rows persisted in PostgreSQL.
package models

import "time"

// User is an account. The password itself is never stored: Salt and
// Verifier come from the client-side key derivation.
type User struct {
	ID        string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
