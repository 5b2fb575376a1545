package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/common"
)

var errBoom = errors.New("boom")

type fakeStore struct {
	mu sync.Mutex

	session    *models.Session
	sessionErr error
	userID     string
	userErr    error

	rows    []*models.FileRecord
	listErr error

	uploadErr   map[string]error // by key
	insertErr   map[string]error // by name
	removeErr   error
	deleteErr   error
	downloadErr error
	signErr     error
	signOutErr  error

	objects map[string][]byte
	signTTL time.Duration
	// signExpiry overrides the granted expiry; zero means fixedNow+ttl.
	signExpiry time.Time
	signOuts   int
	nextID     int
}

func newFakeStore(userID string) *fakeStore {
	return &fakeStore{
		session:   &models.Session{UserID: userID, Email: userID + "@example.com"},
		userID:    userID,
		uploadErr: map[string]error{},
		insertErr: map[string]error{},
		objects:   map[string][]byte{},
	}
}

func (s *fakeStore) GetSession(context.Context) (*models.Session, error) {
	return s.session, s.sessionErr
}

func (s *fakeStore) GetCurrentUser(context.Context) (string, error) {
	return s.userID, s.userErr
}

func (s *fakeStore) ListFiles(_ context.Context, ownerID string) ([]*models.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*models.FileRecord, 0, len(s.rows))
	for _, r := range s.rows {
		if strings.HasPrefix(r.Path, ownerID+"/") {
			c := *r
			out = append(out, &c)
		}
	}
	return out, nil
}

func (s *fakeStore) UploadObject(_ context.Context, key string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.uploadErr[key]; err != nil {
		return "", &common.StorageError{Op: "upload", Err: err}
	}
	s.objects[key] = data
	return key, nil
}

func (s *fakeStore) InsertFileRecord(_ context.Context, rec models.NewFileRecord) (*models.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.insertErr[rec.Name]; err != nil {
		return nil, &common.MetadataError{Op: "insert", Err: err}
	}
	s.nextID++
	r := &models.FileRecord{
		ID:        fmt.Sprintf("id-%d", s.nextID),
		Name:      rec.Name,
		Size:      rec.Size,
		Type:      rec.Type,
		Path:      rec.Path,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, s.nextID, 0, time.UTC),
	}
	s.rows = append(s.rows, r)
	return r, nil
}

func (s *fakeStore) RemoveObject(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeErr != nil {
		return &common.StorageError{Op: "remove", Err: s.removeErr}
	}
	delete(s.objects, path)
	return nil
}

func (s *fakeStore) DeleteFileRecord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return &common.MetadataError{Op: "delete", Err: s.deleteErr}
	}
	for i, r := range s.rows {
		if r.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (s *fakeStore) DownloadObject(_ context.Context, path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.downloadErr != nil {
		return nil, &common.StorageError{Op: "download", Err: s.downloadErr}
	}
	b, ok := s.objects[path]
	if !ok {
		return nil, &common.StorageError{Op: "download", Err: common.ErrorNotFound}
	}
	return b, nil
}

func (s *fakeStore) CreateSignedURL(_ context.Context, path string, ttl time.Duration) (string, time.Time, error) {
	s.signTTL = ttl
	if s.signErr != nil {
		return "", time.Time{}, &common.StorageError{Op: "sign", Err: s.signErr}
	}
	exp := s.signExpiry
	if exp.IsZero() {
		exp = fixedNow.Add(ttl)
	}
	return "https://share.example/" + path, exp, nil
}

func (s *fakeStore) SignOut(context.Context) error {
	s.signOuts++
	return s.signOutErr
}

type fakeSaver struct {
	saved map[string][]byte
	err   error
}

func (f *fakeSaver) Save(name string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.saved == nil {
		f.saved = map[string][]byte{}
	}
	f.saved[name] = data
	return "/downloads/" + name, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

// manualTimers collects scheduled callbacks so tests fire them explicitly.
type manualTimers struct {
	fns   []func()
	delay []time.Duration
}

func (m *manualTimers) after(d time.Duration, f func()) {
	m.delay = append(m.delay, d)
	m.fns = append(m.fns, f)
}

func upload(name, typ, body string) models.UploadFile {
	return models.UploadFile{
		Name: name,
		Size: int64(len(body)),
		Type: typ,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(body)), nil },
	}
}

func record(id, name, typ string, created time.Time) *models.FileRecord {
	return &models.FileRecord{ID: id, Name: name, Type: typ, Path: "u1/" + name, CreatedAt: created}
}
