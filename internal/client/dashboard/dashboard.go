// Package dashboard holds the file list and view state behind the main
// screen and runs the user's actions against the remote store.
//
// Every remote failure is caught here: it is logged and becomes the single
// current error message. Nothing propagates to the caller.
package dashboard

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdrive/internal/client/category"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
)

// Store is the remote surface the dashboard needs.
type Store interface {
	GetSession(ctx context.Context) (*models.Session, error)
	GetCurrentUser(ctx context.Context) (string, error)
	ListFiles(ctx context.Context, ownerID string) ([]*models.FileRecord, error)
	UploadObject(ctx context.Context, key string, data []byte) (string, error)
	InsertFileRecord(ctx context.Context, rec models.NewFileRecord) (*models.FileRecord, error)
	RemoveObject(ctx context.Context, path string) error
	DeleteFileRecord(ctx context.Context, id string) error
	DownloadObject(ctx context.Context, path string) ([]byte, error)
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (url string, expiresAt time.Time, err error)
	SignOut(ctx context.Context) error
}

// Saver writes a downloaded file somewhere the user can find it.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

type Clipboard interface {
	WriteText(text string) error
}

// User-visible messages.
const (
	MsgLoadFailed       = "Failed to load files"
	MsgNotAuthenticated = "User not authenticated"
	MsgDeleteStorage    = "Failed to delete file from storage"
	MsgDeleteMetadata   = "Failed to delete file metadata"
	MsgDownloadFailed   = "Failed to download file"
	MsgShareLinkFailed  = "Failed to create share link"
	MsgShareFailed      = "Failed to share file"
	msgProcessPrefix    = "Failed to process "
	msgUploadPrefix     = "Failed to upload "
	msgMetadataPrefix   = "Failed to save metadata for "
)

type shareNotice struct {
	url       string
	expiresAt time.Time
}

type Dashboard struct {
	store  Store
	saver  Saver
	clip   Clipboard
	logger logging.Logger

	shareTTL       time.Duration
	noticeDuration time.Duration

	now       func() time.Time
	afterFunc func(d time.Duration, f func())

	mu       sync.Mutex
	files    []*models.FileRecord
	view     models.ViewState
	loading  bool
	errMsg   string
	share    *shareNotice
	shareGen uint64
}

func New(store Store, saver Saver, clip Clipboard, l logging.Logger, shareTTL, noticeDuration time.Duration) *Dashboard {
	return &Dashboard{
		store:          store,
		saver:          saver,
		clip:           clip,
		logger:         l.With("module", "dashboard"),
		shareTTL:       shareTTL,
		noticeDuration: noticeDuration,
		now:            time.Now,
		afterFunc:      func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		view:           models.ViewState{IsGridView: true},
	}
}

func (d *Dashboard) setError(msg string) {
	d.mu.Lock()
	d.errMsg = msg
	d.mu.Unlock()
}

func (d *Dashboard) fail(ctx context.Context, msg, op string, err error, args ...any) {
	d.logger.Error(ctx, msg, append([]any{"op", op, "err", err}, args...)...)
	d.setError(msg)
}

func (d *Dashboard) lookup(id string) (*models.FileRecord, []*models.FileRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, f := range d.files {
		if f.ID == id {
			return f, d.files
		}
	}
	return nil, d.files
}

// Mount checks the session and loads the user's files. Without a session it
// returns RouteLogin and loads nothing.
func (d *Dashboard) Mount(ctx context.Context) models.Route {
	s, err := d.store.GetSession(ctx)
	if err != nil {
		d.logger.Error(ctx, "session check failed", "op", "mount", "err", err)
	}
	if s == nil {
		return models.RouteLogin
	}

	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	if d.load(ctx, s.UserID) {
		d.setError("")
	}

	d.mu.Lock()
	d.loading = false
	d.mu.Unlock()

	return models.RouteDashboard
}

// load replaces the list with the owner's files, newest first. It does not
// touch the current error on success.
func (d *Dashboard) load(ctx context.Context, ownerID string) bool {
	files, err := d.store.ListFiles(ctx, ownerID)
	if err != nil {
		d.fail(ctx, MsgLoadFailed, "list", err)
		return false
	}

	sorted := make([]*models.FileRecord, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })

	d.mu.Lock()
	d.files = sorted
	d.mu.Unlock()
	return true
}

func readUpload(f models.UploadFile) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Upload stores each file and its metadata row in turn. A failing file is
// reported and skipped; the rest of the batch still runs. The list is then
// re-fetched in full. Only the last failure stays visible.
func (d *Dashboard) Upload(ctx context.Context, files []models.UploadFile) {
	d.mu.Lock()
	d.view.IsUploading = true
	d.errMsg = ""
	d.mu.Unlock()

	userID, err := d.store.GetCurrentUser(ctx)
	if err != nil || userID == "" {
		if err != nil {
			d.logger.Error(ctx, "current user lookup failed", "op", "upload", "err", err)
		}
		d.mu.Lock()
		d.view.IsUploading = false
		d.errMsg = MsgNotAuthenticated
		d.mu.Unlock()
		return
	}

	for _, f := range files {
		d.uploadOne(ctx, userID, f)
	}

	d.mu.Lock()
	d.view.IsUploading = false
	d.mu.Unlock()

	d.load(ctx, userID)
}

func (d *Dashboard) uploadOne(ctx context.Context, userID string, f models.UploadFile) {
	data, err := readUpload(f)
	if err != nil {
		d.fail(ctx, msgProcessPrefix+f.Name, "read", err, "file", f.Name)
		return
	}

	storagePath, err := d.store.UploadObject(ctx, userID+"/"+f.Name, data)
	if err != nil {
		d.fail(ctx, msgUploadPrefix+f.Name, "upload", err, "file", f.Name)
		return
	}

	size := f.Size
	if size <= 0 {
		size = int64(len(data))
	}

	_, err = d.store.InsertFileRecord(ctx, models.NewFileRecord{Name: f.Name, Size: size, Type: f.Type, Path: storagePath})
	if err != nil {
		d.fail(ctx, msgMetadataPrefix+f.Name, "insert", err, "file", f.Name)
	}
}

// Delete removes the object, then its metadata row. The record leaves the
// list only when both succeed; a failure after the object is gone leaves
// the stores out of step and is only reported.
func (d *Dashboard) Delete(ctx context.Context, id string) {
	f, snapshot := d.lookup(id)
	if f == nil {
		return
	}

	if err := d.store.RemoveObject(ctx, f.Path); err != nil {
		d.fail(ctx, MsgDeleteStorage, "remove", err, "file", f.Name)
		return
	}
	if err := d.store.DeleteFileRecord(ctx, f.ID); err != nil {
		d.fail(ctx, MsgDeleteMetadata, "delete", err, "file", f.Name)
		return
	}

	remaining := make([]*models.FileRecord, 0, len(snapshot))
	for _, r := range snapshot {
		if r.ID != id {
			remaining = append(remaining, r)
		}
	}

	d.mu.Lock()
	d.files = remaining
	d.errMsg = ""
	d.mu.Unlock()
}

// Download fetches the object and hands it to the Saver. It returns where
// the file was saved, or "" on failure or unknown id.
func (d *Dashboard) Download(ctx context.Context, id string) string {
	f, _ := d.lookup(id)
	if f == nil {
		return ""
	}

	data, err := d.store.DownloadObject(ctx, f.Path)
	if err != nil {
		d.fail(ctx, MsgDownloadFailed, "download", err, "file", f.Name)
		return ""
	}
	saved, err := d.saver.Save(f.Name, data)
	if err != nil {
		d.fail(ctx, MsgDownloadFailed, "save", err, "file", f.Name)
		return ""
	}

	d.setError("")
	return saved
}

// Share creates a signed link, copies it to the clipboard and shows a notice
// that clears itself after the notice duration. The notice carries the
// expiry the server granted. A newer share is never cleared by an older
// timer.
func (d *Dashboard) Share(ctx context.Context, id string) {
	f, _ := d.lookup(id)
	if f == nil {
		return
	}

	url, expiresAt, err := d.store.CreateSignedURL(ctx, f.Path, d.shareTTL)
	if err != nil {
		d.fail(ctx, MsgShareLinkFailed, "sign", err, "file", f.Name)
		return
	}
	if err := d.clip.WriteText(url); err != nil {
		d.fail(ctx, MsgShareFailed, "clipboard", err, "file", f.Name)
		return
	}

	d.mu.Lock()
	d.share = &shareNotice{url: url, expiresAt: expiresAt}
	d.shareGen++
	gen := d.shareGen
	d.errMsg = ""
	d.mu.Unlock()

	d.afterFunc(d.noticeDuration, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.shareGen == gen {
			d.share = nil
		}
	})
}

// Logout signs out and resets the view. A failed sign out is only logged.
func (d *Dashboard) Logout(ctx context.Context) models.Route {
	if err := d.store.SignOut(ctx); err != nil {
		d.logger.Error(ctx, "sign out failed", "op", "logout", "err", err)
	}

	d.mu.Lock()
	d.files = nil
	d.view = models.ViewState{IsGridView: true}
	d.errMsg = ""
	d.share = nil
	d.shareGen++
	d.mu.Unlock()

	return models.RouteLogin
}

func (d *Dashboard) SetSearch(q string) {
	d.mu.Lock()
	d.view.SearchQuery = q
	d.mu.Unlock()
}

// SelectCategory filters by category; nil shows every category.
func (d *Dashboard) SelectCategory(c *string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c == nil {
		d.view.SelectedCategory = nil
		return
	}
	v := *c
	d.view.SelectedCategory = &v
}

func (d *Dashboard) ToggleView() {
	d.mu.Lock()
	d.view.IsGridView = !d.view.IsGridView
	d.mu.Unlock()
}

// Visible returns the files matching both the search (case-insensitive
// substring of the name) and the selected category.
func (d *Dashboard) Visible() []*models.FileRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	q := strings.ToLower(d.view.SearchQuery)
	out := make([]*models.FileRecord, 0, len(d.files))
	for _, f := range d.files {
		if !strings.Contains(strings.ToLower(f.Name), q) {
			continue
		}
		if d.view.SelectedCategory != nil && category.GetFileCategory(f.Type).Category != *d.view.SelectedCategory {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Categories lists the distinct categories of the full list in first-seen
// order.
func (d *Dashboard) Categories() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	seen := make(map[string]struct{})
	var out []string
	for _, f := range d.files {
		c := category.GetFileCategory(f.Type).Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func (d *Dashboard) Files() []*models.FileRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*models.FileRecord, len(d.files))
	copy(out, d.files)
	return out
}

func (d *Dashboard) View() models.ViewState {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := d.view
	if v.SelectedCategory != nil {
		c := *v.SelectedCategory
		v.SelectedCategory = &c
	}
	return v
}

func (d *Dashboard) Error() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}

// ShareNotice reports the link shown by the last share, while it is shown.
func (d *Dashboard) ShareNotice() (string, time.Time, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.share == nil {
		return "", time.Time{}, false
	}
	return d.share.url, d.share.expiresAt, true
}
