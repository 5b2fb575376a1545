// Package refreshtokens persists the opaque refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, valid until now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error

	// DeleteByUser revokes every token of userID (sign out everywhere).
	DeleteByUser(ctx context.Context, userID string) error
}
