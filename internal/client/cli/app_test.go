package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/authform"
	"github.com/dmitrijs2005/gophdrive/internal/client/dashboard"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdrive/internal/client/services"
	"github.com/dmitrijs2005/gophdrive/internal/client/theme"
	"github.com/dmitrijs2005/gophdrive/internal/common"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memMeta struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memMeta) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (m *memMeta) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memMeta) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memMeta) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string]string{}
	return nil
}

var _ metadata.Repository = (*memMeta)(nil)

// remote is an in-memory stand-in for the signed-in remote store.
type remote struct {
	user     string
	email    string
	password string
	rows     []*models.FileRecord
	objects  map[string][]byte
	nextID   int
}

func newRemote() *remote {
	return &remote{password: "secret1", objects: map[string][]byte{}}
}

func (r *remote) SignIn(_ context.Context, c services.Credential) error {
	if c.Password != r.password {
		return &common.AuthError{Message: "Invalid login credentials", Err: common.ErrorUnauthorized}
	}
	r.user, r.email = "u1", c.Email
	return nil
}

func (r *remote) SignUp(context.Context, services.Credential) error { return nil }

func (r *remote) LastEmail(context.Context) string { return r.email }

func (r *remote) Ping(context.Context) error { return nil }

func (r *remote) GetSession(context.Context) (*models.Session, error) {
	if r.user == "" {
		return nil, nil
	}
	return &models.Session{UserID: r.user, Email: r.email}, nil
}

func (r *remote) GetCurrentUser(context.Context) (string, error) { return r.user, nil }

func (r *remote) ListFiles(context.Context, string) ([]*models.FileRecord, error) {
	return append([]*models.FileRecord(nil), r.rows...), nil
}

func (r *remote) UploadObject(_ context.Context, key string, data []byte) (string, error) {
	r.objects[key] = data
	return key, nil
}

func (r *remote) InsertFileRecord(_ context.Context, rec models.NewFileRecord) (*models.FileRecord, error) {
	r.nextID++
	f := &models.FileRecord{ID: string(rune('0' + r.nextID)), Name: rec.Name, Size: rec.Size, Type: rec.Type, Path: rec.Path, CreatedAt: time.Now()}
	r.rows = append(r.rows, f)
	return f, nil
}

func (r *remote) RemoveObject(_ context.Context, path string) error {
	delete(r.objects, path)
	return nil
}

func (r *remote) DeleteFileRecord(_ context.Context, id string) error {
	for i, f := range r.rows {
		if f.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
		}
	}
	return nil
}

func (r *remote) DownloadObject(_ context.Context, path string) ([]byte, error) {
	b, ok := r.objects[path]
	if !ok {
		return nil, &common.StorageError{Op: "download", Err: common.ErrorNotFound}
	}
	return b, nil
}

func (r *remote) CreateSignedURL(_ context.Context, path string, ttl time.Duration) (string, time.Time, error) {
	return "https://signed.example/" + path, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Add(ttl), nil
}

func (r *remote) SignOut(context.Context) error {
	r.user = ""
	return nil
}

type memClipboard struct{ text string }

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

type testApp struct {
	*App
	remote *remote
	meta   *memMeta
	clip   *memClipboard
	out    *bytes.Buffer
	lines  *[]string
	dir    string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	lines := capturePrint(t)

	r := newRemote()
	meta := &memMeta{data: map[string]string{}}
	clip := &memClipboard{}
	dir := t.TempDir()
	l := logging.Discard()

	dash := dashboard.New(r, DirSaver{Dir: dir}, clip, l, time.Hour, time.Minute)
	a := NewApp(l, authform.NewSubmitter(r, l), dash, theme.NewStore(meta), r, r)

	out := &bytes.Buffer{}
	a.out = out
	a.reader = bufio.NewReader(strings.NewReader(""))

	return &testApp{App: a, remote: r, meta: meta, clip: clip, out: out, lines: lines, dir: dir}
}

func stubCredentials(t *testing.T, email, password string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, string, io.Writer) (string, error) { return email, nil }
	getPassword = func(io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func TestApp_CommandsRequireLogin(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	for _, err := range []error{
		a.List(ctx), a.Search(ctx, "x"), a.Filter(ctx, ""), a.ToggleView(ctx),
		a.Upload(ctx, []string{"x"}), a.Download(ctx, "1"), a.Share(ctx, "1"),
		a.Delete(ctx, "1"), a.Logout(ctx),
	} {
		assert.ErrorIs(t, err, errNotLoggedIn)
	}
}

func TestApp_LoginFailureStaysOnLogin(t *testing.T) {
	a := newTestApp(t)
	stubCredentials(t, "me@example.com", "wrong-password")

	require.NoError(t, a.Login(context.Background()))

	assert.False(t, a.isLoggedIn())
	assert.Contains(t, strings.Join(*a.lines, "\n"), "Invalid login credentials")
}

func TestApp_LoginUploadShareDownloadDelete(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	stubCredentials(t, "me@example.com", "secret1")

	require.NoError(t, a.Login(ctx))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, "(me@example.com)", a.getStatus())

	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o600))

	require.NoError(t, a.Upload(ctx, []string{src}))
	require.Len(t, a.remote.rows, 1)
	f := a.remote.rows[0]
	assert.Equal(t, "notes.txt", f.Name)
	assert.Equal(t, "text/plain", f.Type)
	assert.Equal(t, int64(5), f.Size)
	assert.Equal(t, []byte("hello"), a.remote.objects["u1/notes.txt"])
	assert.Contains(t, a.out.String(), "notes.txt")

	require.NoError(t, a.Share(ctx, f.ID))
	assert.Equal(t, "https://signed.example/u1/notes.txt", a.clip.text)

	require.NoError(t, a.Download(ctx, f.ID))
	got, err := os.ReadFile(filepath.Join(a.dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	require.NoError(t, a.Delete(ctx, f.ID))
	assert.Empty(t, a.remote.rows)
	assert.Empty(t, a.remote.objects)

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
}

func TestApp_UploadMissingFileReported(t *testing.T) {
	a := newTestApp(t)
	stubCredentials(t, "me@example.com", "secret1")
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Upload(context.Background(), []string{filepath.Join(t.TempDir(), "gone.pdf")}))

	assert.Contains(t, strings.Join(*a.lines, "\n"), "Failed to process gone.pdf")
	assert.Empty(t, a.remote.rows)
}

func TestApp_Theme(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Theme(ctx, "dark"))
	assert.Equal(t, theme.Dark, a.themes.Current())
	assert.Equal(t, "dark", a.meta.data[metadata.KeyTheme])

	err := a.Theme(ctx, "neon")
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, theme.Dark, a.themes.Current())
}

func TestApp_FilterLists(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	a.remote.user = "u1"
	a.remote.rows = []*models.FileRecord{
		{ID: "1", Name: "a.png", Type: "image/png", Path: "u1/a.png", CreatedAt: time.Now()},
		{ID: "2", Name: "b.pdf", Type: "application/pdf", Path: "u1/b.pdf", CreatedAt: time.Now().Add(-time.Hour)},
	}
	a.enterDashboard(ctx)
	require.True(t, a.isLoggedIn())

	*a.lines = nil
	require.NoError(t, a.Filter(ctx, "?"))
	assert.Equal(t, []string{"Image", "PDF"}, *a.lines)

	a.out.Reset()
	require.NoError(t, a.Filter(ctx, "PDF"))
	assert.Contains(t, a.out.String(), "b.pdf")
	assert.NotContains(t, a.out.String(), "a.png")
}

func TestStatusWatcher(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	a.pinger = pingFunc(func(context.Context) error { return errors.New("down") })
	a.checkOnline(ctx)
	assert.Equal(t, ModeOffline, a.Mode)

	a.pinger = pingFunc(func(context.Context) error { return nil })
	a.checkOnline(ctx)
	assert.Equal(t, ModeOnline, a.Mode)
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestRender(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	files := []*models.FileRecord{
		{ID: "1", Name: "report.pdf", Type: "application/pdf", Size: 2048, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "2", Name: "a-rather-long-file-name-that-gets-cut.txt", Type: "text/plain", Size: 10, CreatedAt: now},
	}

	for _, th := range []theme.Theme{theme.Light, theme.Evening, theme.Dark, "unknown"} {
		s := newStyles(th)

		var list bytes.Buffer
		renderList(&list, s, files, now)
		assert.Equal(t, 2, strings.Count(list.String(), "\n"))
		assert.Contains(t, list.String(), "report.pdf")
		assert.Contains(t, list.String(), "2 KB")
		assert.Contains(t, list.String(), "PDF")

		var grid bytes.Buffer
		renderGrid(&grid, s, files, now)
		assert.Contains(t, grid.String(), "report.pdf")
		assert.Contains(t, grid.String(), "Text")
		assert.NotContains(t, grid.String(), "cut.txt")
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "фа…", truncate("файл", 3))
}
