package services

import (
	"context"
	"net/http"
	"path"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/client"
	"github.com/dmitrijs2005/gophdrive/internal/client/filetype"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/netx"
)

// FileService moves object bytes over presigned URLs and metadata rows over
// the API. Object failures are *common.StorageError, row failures
// *common.MetadataError.
type FileService struct {
	client client.Client
	http   *http.Client
}

func NewFileService(c client.Client, hc *http.Client) *FileService {
	if hc == nil {
		hc = netx.DefaultClient
	}
	return &FileService{client: c, http: hc}
}

func (s *FileService) ListFiles(ctx context.Context, ownerID string) ([]*models.FileRecord, error) {
	files, err := s.client.ListFiles(ctx, ownerID)
	if err != nil {
		return nil, &common.MetadataError{Op: "list", Err: err}
	}
	return files, nil
}

// UploadObject stores data under key and returns the storage path.
func (s *FileService) UploadObject(ctx context.Context, key string, data []byte) (string, error) {
	contentType := filetype.Detect(path.Base(key), data)

	storagePath, url, err := s.client.CreateUploadURL(ctx, key, contentType)
	if err != nil {
		return "", &common.StorageError{Op: "upload", Err: err}
	}
	if err := netx.PutPresigned(ctx, s.http, url, contentType, data); err != nil {
		return "", &common.StorageError{Op: "upload", Err: err}
	}
	return storagePath, nil
}

func (s *FileService) InsertFileRecord(ctx context.Context, rec models.NewFileRecord) (*models.FileRecord, error) {
	f, err := s.client.InsertFile(ctx, rec)
	if err != nil {
		return nil, &common.MetadataError{Op: "insert", Err: err}
	}
	return f, nil
}

func (s *FileService) RemoveObject(ctx context.Context, storagePath string) error {
	if err := s.client.RemoveObject(ctx, storagePath); err != nil {
		return &common.StorageError{Op: "remove", Err: err}
	}
	return nil
}

func (s *FileService) DeleteFileRecord(ctx context.Context, id string) error {
	if err := s.client.DeleteFile(ctx, id); err != nil {
		return &common.MetadataError{Op: "delete", Err: err}
	}
	return nil
}

func (s *FileService) DownloadObject(ctx context.Context, storagePath string) ([]byte, error) {
	url, err := s.client.CreateDownloadURL(ctx, storagePath)
	if err != nil {
		return nil, &common.StorageError{Op: "download", Err: err}
	}
	data, err := netx.GetPresigned(ctx, s.http, url)
	if err != nil {
		return nil, &common.StorageError{Op: "download", Err: err}
	}
	return data, nil
}

// CreateSignedURL returns a share link and the expiry the server granted.
func (s *FileService) CreateSignedURL(ctx context.Context, storagePath string, ttl time.Duration) (string, time.Time, error) {
	url, expiresAt, err := s.client.CreateSignedURL(ctx, storagePath, ttl)
	if err != nil {
		return "", time.Time{}, &common.StorageError{Op: "sign", Err: err}
	}
	return url, expiresAt, nil
}
