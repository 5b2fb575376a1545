// Package server wires the GophDrive backend: PostgreSQL metadata, S3 object
// storage, the FileService gRPC endpoint and the HTTP side channel, and runs
// them until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophdrive/internal/logging"
	"github.com/dmitrijs2005/gophdrive/internal/server/config"
	"github.com/dmitrijs2005/gophdrive/internal/server/httpapi"
	"github.com/dmitrijs2005/gophdrive/internal/server/metrics"
	"github.com/dmitrijs2005/gophdrive/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophdrive/internal/server/services"
	"github.com/dmitrijs2005/gophdrive/internal/server/storage"
	"github.com/prometheus/client_golang/prometheus"

	gs "github.com/dmitrijs2005/gophdrive/internal/server/grpc"
)

// Seams for tests.
var (
	openPostgres = repomanager.OpenPostgres
	newStore     = func(ctx context.Context, o storage.Options) (bucketStore, error) {
		return storage.NewS3Store(ctx, o)
	}
)

type bucketStore interface {
	storage.ObjectStore
	EnsureBucket(ctx context.Context) error
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	registry    *prometheus.Registry
	userService *services.UserService
	fileService *services.FileService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := openPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := newStore(ctx, storage.Options{
		AccessKey: c.S3RootUser,
		SecretKey: c.S3RootPassword,
		Region:    c.S3Region,
		Endpoint:  c.S3BaseEndpoint,
		Bucket:    c.S3Bucket,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("object storage init error: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bucket init error: %w", err)
	}

	reg := prometheus.NewRegistry()
	mt := metrics.New(reg)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		registry:    reg,
		userService: services.NewUserService(db, rm, c, mt),
		fileService: services.NewFileService(db, rm, store, c, mt),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.fileService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "err", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.db, app.registry)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server failed", "err", err)
		cancelFunc()
	}
}

// Run blocks until a signal arrives, ctx is cancelled or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "closing database", "err", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
