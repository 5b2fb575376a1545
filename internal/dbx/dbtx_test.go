package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newFilesDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE files (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func fileCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&n))
	return n
}

func insertFile(ctx context.Context, tx DBTX) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO files(name) VALUES ('report.pdf')`)
	return err
}

func TestWithTx(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		fn      func(ctx context.Context, tx DBTX) error
		wantErr error
		rows    int
	}{
		{"commit", insertFile, nil, 1},
		{"rollback on error", func(ctx context.Context, tx DBTX) error {
			if err := insertFile(ctx, tx); err != nil {
				return err
			}
			return boom
		}, boom, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newFilesDB(t)
			err := WithTx(context.Background(), db, nil, tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.rows, fileCount(t, db))
		})
	}
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := newFilesDB(t)

	assert.PanicsWithValue(t, "kaput", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			require.NoError(t, insertFile(ctx, tx))
			panic("kaput")
		})
	})
	assert.Equal(t, 0, fileCount(t, db))
}

func TestWithTx_BeginError(t *testing.T) {
	db := newFilesDB(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})
	assert.ErrorContains(t, err, "begin tx")
	assert.False(t, called)
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM refresh_tokens`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, "t")
		return err
	})
	assert.EqualError(t, err, "commit tx: serialization failure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackErrorJoined(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("conn reset"))

	fnErr := errors.New("insert failed")
	err = WithTx(context.Background(), db, nil, func(context.Context, DBTX) error { return fnErr })

	assert.ErrorIs(t, err, fnErr)
	assert.ErrorContains(t, err, "rollback: conn reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsUniqueViolation(nil))
}
