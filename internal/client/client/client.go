// Package client talks to the GophDrive FileService over gRPC and bootstraps
// the local SQLite database.
//
// Transport failures are mapped onto sentinels matched with errors.Is:
// ErrUnavailable, ErrUnauthorized and the common.Error* values. The server's
// status message is kept in the error text.
package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/models"
)

type Client interface {
	Close() error

	Register(ctx context.Context, email string, salt, verifier []byte) (string, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	Login(ctx context.Context, email string, verifier []byte) error
	Logout(ctx context.Context) error
	GetSession(ctx context.Context) (*models.Session, error)
	Ping(ctx context.Context) error

	ListFiles(ctx context.Context, ownerID string) ([]*models.FileRecord, error)
	InsertFile(ctx context.Context, rec models.NewFileRecord) (*models.FileRecord, error)
	DeleteFile(ctx context.Context, id string) error
	CreateUploadURL(ctx context.Context, key, contentType string) (path, url string, err error)
	CreateDownloadURL(ctx context.Context, path string) (string, error)
	RemoveObject(ctx context.Context, path string) error
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (url string, expiresAt time.Time, err error)

	Tokens() (access, refresh string)
	SetTokens(access, refresh string)
	OnTokensRefreshed(fn func(access, refresh string))
}
