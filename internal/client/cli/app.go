package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/gophdrive/internal/client/authform"
	"github.com/dmitrijs2005/gophdrive/internal/client/dashboard"
	"github.com/dmitrijs2005/gophdrive/internal/client/models"
	"github.com/dmitrijs2005/gophdrive/internal/client/theme"
	"github.com/dmitrijs2005/gophdrive/internal/filex"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Pinger reports whether the server is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Identity is what the app needs to know about the signed-in user.
type Identity interface {
	LastEmail(ctx context.Context) string
}

type App struct {
	logger   logging.Logger
	form     *authform.Submitter
	dash     *dashboard.Dashboard
	themes   *theme.Store
	identity Identity
	pinger   Pinger

	route  models.Route
	email  string
	styles styles

	modeMu sync.Mutex
	Mode   Mode

	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
	closers []func() error
}

func NewApp(l logging.Logger, form *authform.Submitter, dash *dashboard.Dashboard, themes *theme.Store, id Identity, p Pinger) *App {
	return &App{
		logger:   l.With("module", "cli"),
		form:     form,
		dash:     dash,
		themes:   themes,
		identity: id,
		pinger:   p,
		route:    models.RouteLogin,
		styles:   newStyles(themes.Current()),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}
}

func (a *App) isLoggedIn() bool {
	return a.route == models.RouteDashboard
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.Mode
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := a.pinger.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Run restores the previous session if there is one and then reads commands
// from stdin until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn(a.styles.title.Render("GophDrive (type 'help' for commands)"))

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, 30*time.Second)

	a.enterDashboard(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// DirSaver stores downloads in Dir without overwriting existing files.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(name string, data []byte) (string, error) {
	return filex.SaveFile(s.Dir, name, data)
}
