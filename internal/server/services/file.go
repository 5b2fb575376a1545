package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/server/config"
	"github.com/dmitrijs2005/gophdrive/internal/server/metrics"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophdrive/internal/server/storage"
)

// FileService owns file metadata and hands out presigned storage URLs.
// Object keys are "<userID>/<name>"; a caller may only touch keys under
// its own prefix.
type FileService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	store           storage.ObjectStore
	metrics         *metrics.Metrics
	presignTTL      time.Duration
	maxSignedURLTTL time.Duration
	now             func() time.Time
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, store storage.ObjectStore, cfg *config.Config, mt *metrics.Metrics) *FileService {
	return &FileService{
		db:              db,
		repomanager:     m,
		store:           store,
		metrics:         mt,
		presignTTL:      cfg.PresignTTL,
		maxSignedURLTTL: cfg.MaxSignedURLTTL,
		now:             time.Now,
	}
}

// ownsKey reports whether key is a clean object key under userID's prefix.
func ownsKey(userID, key string) bool {
	prefix := userID + "/"
	if userID == "" || !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return false
	}
	return path.Clean(key) == key
}

// List returns the user's files, newest first.
func (s *FileService) List(ctx context.Context, userID string) ([]*models.File, error) {
	files, err := s.repomanager.Files(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	return files, nil
}

// Insert records metadata for an object the user has already uploaded.
func (s *FileService) Insert(ctx context.Context, userID string, f *models.File) (*models.File, error) {
	if strings.TrimSpace(f.Name) == "" || f.Size < 0 {
		return nil, common.ErrorInvalidArg
	}
	if !ownsKey(userID, f.Path) {
		return nil, common.ErrorForbidden
	}

	f.UserID = userID
	created, err := s.repomanager.Files(s.db).Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error inserting file: %w", err)
	}
	s.metrics.Upload()
	return created, nil
}

// Delete removes the metadata row only; the object is removed separately
// through RemoveObject.
func (s *FileService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repomanager.Files(s.db).Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting file: %w", err)
	}
	s.metrics.Delete()
	return nil
}

// CreateUploadURL returns the storage path and a presigned PUT URL for key.
// Keys that already hold an object are rejected with
// common.ErrorObjectExists.
func (s *FileService) CreateUploadURL(ctx context.Context, userID, key, contentType string) (string, string, error) {
	if !ownsKey(userID, key) {
		return "", "", common.ErrorForbidden
	}

	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return "", "", fmt.Errorf("error checking object: %w", err)
	}
	if exists {
		return "", "", common.ErrorObjectExists
	}

	url, err := s.store.PresignPut(ctx, key, contentType, s.presignTTL)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

// lookup returns the metadata row behind objectPath. Objects without a row
// are not handed out, so a half-deleted file cannot be downloaded or shared.
func (s *FileService) lookup(ctx context.Context, userID, objectPath string) (*models.File, error) {
	if !ownsKey(userID, objectPath) {
		return nil, common.ErrorForbidden
	}
	f, err := s.repomanager.Files(s.db).GetByPath(ctx, userID, objectPath)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return f, nil
}

// CreateDownloadURL presigns a GET that saves under the file's recorded name.
func (s *FileService) CreateDownloadURL(ctx context.Context, userID, objectPath string) (string, error) {
	f, err := s.lookup(ctx, userID, objectPath)
	if err != nil {
		return "", err
	}
	name := f.Name
	if name == "" {
		name = path.Base(objectPath)
	}
	return s.store.PresignGet(ctx, objectPath, name, s.presignTTL)
}

// CreateSignedURL issues a share link valid for ttl. Zero means
// common.ShareLinkTTL; negative or above the configured maximum is
// common.ErrorInvalidTTL.
func (s *FileService) CreateSignedURL(ctx context.Context, userID, objectPath string, ttl time.Duration) (string, time.Time, error) {
	if ttl == 0 {
		ttl = common.ShareLinkTTL
	}
	if ttl < 0 || ttl > s.maxSignedURLTTL {
		return "", time.Time{}, common.ErrorInvalidTTL
	}
	if _, err := s.lookup(ctx, userID, objectPath); err != nil {
		return "", time.Time{}, err
	}

	url, err := s.store.PresignGet(ctx, objectPath, "", ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	s.metrics.Share()
	return url, s.now().Add(ttl), nil
}

func (s *FileService) RemoveObject(ctx context.Context, userID, objectPath string) error {
	if !ownsKey(userID, objectPath) {
		return common.ErrorForbidden
	}
	return s.store.Remove(ctx, objectPath)
}
