package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/gophdrive/internal/client/authform"
	"github.com/dmitrijs2005/gophdrive/internal/client/client"
	"github.com/dmitrijs2005/gophdrive/internal/client/config"
	"github.com/dmitrijs2005/gophdrive/internal/client/dashboard"
	"github.com/dmitrijs2005/gophdrive/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdrive/internal/client/services"
	"github.com/dmitrijs2005/gophdrive/internal/client/theme"
	"github.com/dmitrijs2005/gophdrive/internal/logging"
	"github.com/dmitrijs2005/gophdrive/internal/netx"
)

// Setup opens the local database, connects to the server and wires the
// workflows behind the REPL. The returned App releases both on Close.
func Setup(ctx context.Context, c *config.Config) (*App, error) {
	l := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	meta := metadata.NewSQLiteRepository(db)

	themes := theme.NewStore(meta)
	if err := themes.Load(ctx); err != nil {
		l.Warn(ctx, "theme preference not loaded", "err", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to server: %w", err)
	}

	store := services.NewRemoteStore(apiClient, meta, netx.DefaultClient, l)
	if err := store.Restore(ctx); err != nil {
		_ = apiClient.Close()
		_ = db.Close()
		return nil, fmt.Errorf("error restoring session: %w", err)
	}

	dash := dashboard.New(store, DirSaver{Dir: c.DownloadDir}, SystemClipboard{}, l, c.ShareTTL, c.ShareNoticeDuration)
	app := NewApp(l, authform.NewSubmitter(store, l), dash, themes, store, apiClient)
	app.closers = []func() error{apiClient.Close, db.Close}
	return app, nil
}

// Close releases the server connection and the local database.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
