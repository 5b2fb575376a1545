package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/dbx"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/files"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	byID      map[string]*models.User
	createErr error
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "id-" + u.Email
	if f.byEmail == nil {
		f.byEmail = map[string]*models.User{}
	}
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeRefreshRepo struct {
	findOut   *models.RefreshToken
	findErr   error
	createErr error
	delErr    error

	created      []string
	deleted      []string
	deletedUsers []string
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.findOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteByUser(_ context.Context, userID string) error {
	f.deletedUsers = append(f.deletedUsers, userID)
	return f.delErr
}

type fakeFilesRepo struct {
	rows      []*models.File
	createErr error
	listErr   error
	deleteErr error
	getErr    error
	deleted   []string
}

func (f *fakeFilesRepo) Create(_ context.Context, file *models.File) (*models.File, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	file.ID = "f-" + file.Name
	file.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f.rows = append(f.rows, file)
	return file, nil
}

func (f *fakeFilesRepo) ListByUser(_ context.Context, userID string) ([]*models.File, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.File
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFilesRepo) GetByPath(_ context.Context, userID, p string) (*models.File, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, r := range f.rows {
		if r.Path == p && r.UserID == userID {
			return r, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFilesRepo) Delete(_ context.Context, userID, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, userID+":"+id)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	f *fakeFilesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Files(dbx.DBTX) files.Repository                 { return m.f }

type fakeStore struct {
	existing  map[string]bool
	existsErr error
	removeErr error
	presErr   error

	removed  []string
	getName  string
	getTTL   time.Duration
	putCType string
}

func (f *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	return f.existing[key], f.existsErr
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeStore) PresignPut(_ context.Context, key, contentType string, _ time.Duration) (string, error) {
	f.putCType = contentType
	if f.presErr != nil {
		return "", f.presErr
	}
	return "https://s3/put/" + key, nil
}

func (f *fakeStore) PresignGet(_ context.Context, key, downloadName string, ttl time.Duration) (string, error) {
	f.getName, f.getTTL = downloadName, ttl
	if f.presErr != nil {
		return "", f.presErr
	}
	return "https://s3/get/" + key, nil
}
