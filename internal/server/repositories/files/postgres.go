// Package files stores file metadata rows in PostgreSQL.
package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/dbx"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the row and fills in ID and CreatedAt. A second row for
// the same storage path yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	query := `
		INSERT INTO files (user_id, name, size, type, path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, file.UserID, file.Name, file.Size, file.Type, file.Path).
		Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return file, nil
}

// ListByUser returns the user's rows, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.File, error) {
	query := `
		SELECT id, user_id, name, size, type, path, created_at FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	result := make([]*models.File, 0)
	for rows.Next() {
		var f models.File
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Size, &f.Type, &f.Path, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByPath returns the user's row for a storage path; common.ErrorNotFound
// when the path is unknown or belongs to someone else.
func (r *PostgresRepository) GetByPath(ctx context.Context, userID, path string) (*models.File, error) {
	query := `
		SELECT id, user_id, name, size, type, path, created_at FROM files
		WHERE path = $1 AND user_id = $2`

	f := &models.File{}
	err := r.db.QueryRowContext(ctx, query, path, userID).
		Scan(&f.ID, &f.UserID, &f.Name, &f.Size, &f.Type, &f.Path, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// Delete removes the row; common.ErrorNotFound when nothing matched.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM files WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
