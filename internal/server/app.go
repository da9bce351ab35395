// Package server initializes and runs the guest book application: it wires
// configuration, storage backends and services, starts the HTTP server, and
// handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/server/archive"
	"github.com/dmitrijs2005/guestbook/internal/server/config"
	"github.com/dmitrijs2005/guestbook/internal/server/httpapi"
	"github.com/dmitrijs2005/guestbook/internal/server/notify"
	"github.com/dmitrijs2005/guestbook/internal/server/repositories/entries"
	"github.com/dmitrijs2005/guestbook/internal/server/services"
	"github.com/dmitrijs2005/guestbook/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client *mongo.Client
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURI))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db := client.Database(cfg.DatabaseName)

	var notifier notify.Notifier = notify.Noop{}
	if cfg.NotifyEmail != "" {
		notifier = notify.NewSMTPNotifier(cfg)
	}

	es := services.NewEntryService(entries.NewMongoRepository(db), notifier, logger)
	us := services.NewUserService(cfg)
	ms := services.NewMaintenanceService(cfg.BackupDir, archive.NewMongoTool(cfg.DatabaseURI), logger)

	var photos storage.PhotoStorage
	switch cfg.PhotoStorage {
	case config.PhotoStorageS3:
		photos, err = storage.NewS3Storage(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
	default:
		photos = storage.NewDiskStorage(cfg.UploadDir)
	}

	srv := httpapi.NewServer(cfg, logger, es, us, ms, photos)

	return &App{config: cfg, logger: logger, client: client, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.client.Disconnect(context.Background()); err != nil {
		app.logger.Error(ctx, "db disconnect error", "error", err)
	}
}
