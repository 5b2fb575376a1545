package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/client"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/repositories/metadata"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newMeta(t *testing.T) metadata.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	require.NoError(t, err)
	return metadata.NewSQLiteRepository(db)
}

type fakeClient struct {
	client.Client

	access, refresh string
	onRefresh       func(a, r string)

	salt        []byte
	saltErr     error
	loginErr    error
	loginPair   [2]string
	registerErr error
	logoutErr   error
	session     *models.Session
	sessionErr  error

	files       []*models.FileRecord
	err         error
	uploadURL   string
	downloadURL string

	lastRegisterEmail string
	lastRegisterSalt  []byte
	lastVerifier      []byte
	lastUploadKey     string
	lastUploadType    string
	lastSignedTTL     time.Duration
	signedExpiry      time.Time
}

func (f *fakeClient) Tokens() (string, string) { return f.access, f.refresh }

func (f *fakeClient) SetTokens(a, r string) { f.access, f.refresh = a, r }

func (f *fakeClient) OnTokensRefreshed(fn func(a, r string)) { f.onRefresh = fn }

func (f *fakeClient) GetSalt(context.Context, string) ([]byte, error) { return f.salt, f.saltErr }

func (f *fakeClient) Login(_ context.Context, _ string, verifier []byte) error {
	f.lastVerifier = verifier
	if f.loginErr != nil {
		return f.loginErr
	}
	f.access, f.refresh = f.loginPair[0], f.loginPair[1]
	return nil
}

func (f *fakeClient) Register(_ context.Context, email string, salt, verifier []byte) (string, error) {
	f.lastRegisterEmail, f.lastRegisterSalt, f.lastVerifier = email, salt, verifier
	return "u1", f.registerErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.access, f.refresh = "", ""
	return f.logoutErr
}

func (f *fakeClient) GetSession(context.Context) (*models.Session, error) {
	return f.session, f.sessionErr
}

func (f *fakeClient) ListFiles(context.Context, string) ([]*models.FileRecord, error) {
	return f.files, f.err
}

func (f *fakeClient) InsertFile(_ context.Context, rec models.NewFileRecord) (*models.FileRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.FileRecord{ID: "f1", Name: rec.Name, Size: rec.Size, Type: rec.Type, Path: rec.Path}, nil
}

func (f *fakeClient) DeleteFile(context.Context, string) error { return f.err }

func (f *fakeClient) RemoveObject(context.Context, string) error { return f.err }

func (f *fakeClient) CreateUploadURL(_ context.Context, key, contentType string) (string, string, error) {
	f.lastUploadKey, f.lastUploadType = key, contentType
	return key, f.uploadURL, f.err
}

func (f *fakeClient) CreateDownloadURL(context.Context, string) (string, error) {
	return f.downloadURL, f.err
}

func (f *fakeClient) CreateSignedURL(_ context.Context, _ string, ttl time.Duration) (string, time.Time, error) {
	f.lastSignedTTL = ttl
	return "https://share", f.signedExpiry, f.err
}
