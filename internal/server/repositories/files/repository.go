package files

import (
	"context"

	"github.com/dmitrijs2005/gophdrive/internal/server/models"
)

// Repository manages file metadata rows. Every lookup is scoped to the
// owning user so one user can never see another user's rows.
type Repository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	ListByUser(ctx context.Context, userID string) ([]*models.File, error)
	GetByPath(ctx context.Context, userID, path string) (*models.File, error)
	Delete(ctx context.Context, userID, id string) error
}
