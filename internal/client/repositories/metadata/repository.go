// Package metadata is the client's local key/value store: session tokens,
// the signed-in email and UI preferences.
package metadata

import "context"

// Well-known keys.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserID       = "user_id"
	KeyEmail        = "email"
	KeyTheme        = "theme"
)

// Repository stores string values by key. Get returns common.ErrorNotFound
// for absent keys.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
