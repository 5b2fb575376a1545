package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/server/config"
	"github.com/dmitrijs2005/gophdrive/internal/server/metrics"
	"github.com/dmitrijs2005/gophdrive/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newFileService(t *testing.T) (*FileService, *fakeFilesRepo, *fakeStore, *metrics.Metrics) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	repo := &fakeFilesRepo{}
	store := &fakeStore{existing: map[string]bool{}}
	m := metrics.New(prometheus.NewRegistry())
	cfg := &config.Config{PresignTTL: 15 * time.Minute, MaxSignedURLTTL: 24 * time.Hour}

	s := NewFileService(db, &fakeRepoManager{f: repo}, store, cfg, m)
	s.now = func() time.Time { return fixedNow }
	return s, repo, store, m
}

func TestOwnsKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"u1/a.txt", true},
		{"u1/report (1).pdf", true},
		{"u1/my..notes.txt", true},
		{"u1/", false},
		{"u2/a.txt", false},
		{"u10/a.txt", false},
		{"a.txt", false},
		{"u1/../u2/a.txt", false},
		{"u1//a.txt", false},
		{"u1/a/../../u2", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, ownsKey("u1", tt.key))
		})
	}
	assert.False(t, ownsKey("", "/a.txt"))
}

func TestFileService_InsertAndList(t *testing.T) {
	s, repo, _, m := newFileService(t)
	ctx := context.Background()

	f, err := s.Insert(ctx, "u1", &models.File{Name: "a.pdf", Size: 10, Type: "application/pdf", Path: "u1/a.pdf", UserID: "spoofed"})
	require.NoError(t, err)
	assert.Equal(t, "u1", f.UserID, "owner comes from the token, not the request")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Uploads))

	_, err = s.Insert(ctx, "u1", &models.File{Name: "b.pdf", Path: "u2/b.pdf"})
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = s.Insert(ctx, "u1", &models.File{Name: " ", Path: "u1/x"})
	assert.ErrorIs(t, err, common.ErrorInvalidArg)

	_, err = s.Insert(ctx, "u1", &models.File{Name: "neg", Size: -1, Path: "u1/neg"})
	assert.ErrorIs(t, err, common.ErrorInvalidArg)

	list, err := s.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a.pdf", list[0].Name)

	repo.createErr = common.ErrorAlreadyExists
	_, err = s.Insert(ctx, "u1", &models.File{Name: "a.pdf", Path: "u1/a.pdf"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	repo.listErr = errBoom
	_, err = s.List(ctx, "u1")
	assert.ErrorIs(t, err, errBoom)
}

func TestFileService_Delete(t *testing.T) {
	s, repo, _, m := newFileService(t)

	require.NoError(t, s.Delete(context.Background(), "u1", "f1"))
	assert.Equal(t, []string{"u1:f1"}, repo.deleted)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Deletes))

	repo.deleteErr = common.ErrorNotFound
	assert.ErrorIs(t, s.Delete(context.Background(), "u1", "f2"), common.ErrorNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Deletes))
}

func TestFileService_CreateUploadURL(t *testing.T) {
	s, _, store, _ := newFileService(t)
	ctx := context.Background()

	p, url, err := s.CreateUploadURL(ctx, "u1", "u1/a.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "u1/a.txt", p)
	assert.Equal(t, "https://s3/put/u1/a.txt", url)
	assert.Equal(t, "text/plain", store.putCType)

	store.existing["u1/a.txt"] = true
	_, _, err = s.CreateUploadURL(ctx, "u1", "u1/a.txt", "")
	assert.ErrorIs(t, err, common.ErrorObjectExists)

	_, _, err = s.CreateUploadURL(ctx, "u1", "u2/a.txt", "")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	store.existsErr = errBoom
	_, _, err = s.CreateUploadURL(ctx, "u1", "u1/b.txt", "")
	assert.ErrorIs(t, err, errBoom)
}

func TestFileService_CreateDownloadURL(t *testing.T) {
	s, repo, store, _ := newFileService(t)
	repo.rows = []*models.File{{ID: "f1", UserID: "u1", Name: "Q3 report.pdf", Path: "u1/report.pdf"}}
	ctx := context.Background()

	url, err := s.CreateDownloadURL(ctx, "u1", "u1/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://s3/get/u1/report.pdf", url)
	assert.Equal(t, "Q3 report.pdf", store.getName, "saved under the recorded name")
	assert.Equal(t, 15*time.Minute, store.getTTL)

	_, err = s.CreateDownloadURL(ctx, "u2", "u1/report.pdf")
	assert.ErrorIs(t, err, common.ErrorForbidden)
}

func TestFileService_RequiresMetadataRow(t *testing.T) {
	s, repo, store, m := newFileService(t)
	ctx := context.Background()

	_, err := s.CreateDownloadURL(ctx, "u1", "u1/orphan.bin")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, _, err = s.CreateSignedURL(ctx, "u1", "u1/orphan.bin", time.Minute)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, store.getTTL, "nothing presigned")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Shares))

	repo.getErr = errBoom
	_, err = s.CreateDownloadURL(ctx, "u1", "u1/orphan.bin")
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestFileService_CreateSignedURL(t *testing.T) {
	s, repo, store, m := newFileService(t)
	repo.rows = []*models.File{{ID: "f1", UserID: "u1", Name: "a.txt", Path: "u1/a.txt"}}
	ctx := context.Background()

	url, exp, err := s.CreateSignedURL(ctx, "u1", "u1/a.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, "https://s3/get/u1/a.txt", url)
	assert.Equal(t, time.Hour, store.getTTL, "zero ttl means the default share window")
	assert.Empty(t, store.getName, "share links are not forced to download")
	assert.Equal(t, fixedNow.Add(time.Hour), exp)

	_, exp, err = s.CreateSignedURL(ctx, "u1", "u1/a.txt", 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(10*time.Minute), exp)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Shares))

	_, _, err = s.CreateSignedURL(ctx, "u1", "u1/a.txt", 25*time.Hour)
	assert.ErrorIs(t, err, common.ErrorInvalidTTL)

	_, _, err = s.CreateSignedURL(ctx, "u1", "u1/a.txt", -time.Second)
	assert.ErrorIs(t, err, common.ErrorInvalidTTL)

	_, _, err = s.CreateSignedURL(ctx, "u1", "u3/a.txt", time.Minute)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	store.presErr = errBoom
	_, _, err = s.CreateSignedURL(ctx, "u1", "u1/a.txt", time.Minute)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Shares))
}

func TestFileService_RemoveObject(t *testing.T) {
	s, _, store, _ := newFileService(t)

	require.NoError(t, s.RemoveObject(context.Background(), "u1", "u1/a.txt"))
	assert.Equal(t, []string{"u1/a.txt"}, store.removed)

	assert.ErrorIs(t, s.RemoveObject(context.Background(), "u1", "u2/a.txt"), common.ErrorForbidden)

	store.removeErr = errBoom
	assert.ErrorIs(t, s.RemoveObject(context.Background(), "u1", "u1/b.txt"), errBoom)
}
