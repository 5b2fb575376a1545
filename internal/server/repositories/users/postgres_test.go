package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const (
	insertQ = `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*salt,\s*verifier\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at$`
	byLogin = `(?s)^SELECT\s+id,\s*email,\s*verifier,\s*salt,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1$`
	byID    = `(?s)^SELECT\s+id,\s*email,\s*verifier,\s*salt,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`
)

func TestCreate(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(insertQ).
			WithArgs("alice@example.com", []byte("salt"), []byte("verifier")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", now))

		got, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com", Salt: []byte("salt"), Verifier: []byte("verifier")})
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)
		assert.Equal(t, now, got.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(insertQ).WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
		assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

		_, err := repo.Create(context.Background(), &models.User{Email: "alice@example.com"})
		require.Error(t, err)
		assert.Regexp(t, `db error: .*db down`, err.Error())
	})
}

func TestGetUserByLogin(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byLogin).WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "verifier", "salt", "created_at"}).
				AddRow("u-1", "alice@example.com", []byte("ver"), []byte("salt"), time.Now()))

		got, err := repo.GetUserByLogin(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)
		assert.Equal(t, []byte("ver"), got.Verifier)
		assert.Equal(t, []byte("salt"), got.Salt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byLogin).WithArgs("ghost@example.com").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetUserByLogin(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byID).WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "verifier", "salt", "created_at"}).
				AddRow("u-1", "alice@example.com", []byte("ver"), []byte("salt"), time.Now()))

		got, err := repo.GetByID(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(byID).WithArgs("u-1").WillReturnError(errors.New("db err"))

		_, err := repo.GetByID(context.Background(), "u-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrorNotFound)
	})
}
