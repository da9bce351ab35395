// Command backup creates a one-off database archive using the same
// configuration and naming scheme as the server's backup endpoint.
package main

import (
	"context"
	"io"
	"log"
	"log/slog"

	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/server/archive"
	"github.com/dmitrijs2005/guestbook/internal/server/config"
	"github.com/dmitrijs2005/guestbook/internal/server/services"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := services.NewMaintenanceService(cfg.BackupDir, archive.NewMongoTool(cfg.DatabaseURI), logger)

	filename, err := svc.Backup(ctx)
	if err != nil {
		log.Fatalf("Backup failed: %v", err)
	}

	log.Printf("Backup created successfully: %s", filename)
}
