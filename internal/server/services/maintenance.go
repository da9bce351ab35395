package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/server/archive"
)

// MaintenanceService drives database backup and restore through the injected
// archive tool. Archives are compressed, timestamped files in the backup
// directory; nothing is retried automatically.
type MaintenanceService struct {
	backupDir string
	tool      archive.Tool
	logger    logging.Logger
	now       func() time.Time
}

func NewMaintenanceService(backupDir string, tool archive.Tool, logger logging.Logger) *MaintenanceService {
	return &MaintenanceService{
		backupDir: backupDir,
		tool:      tool,
		logger:    logger.With("module", "maintenance_service"),
		now:       time.Now,
	}
}

// Backup dumps the database into a fresh archive and returns its file name.
// The backup directory is created on first use.
func (s *MaintenanceService) Backup(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	filename := backupFileName(s.now().UTC())
	path := filepath.Join(s.backupDir, filename)

	if err := s.tool.Dump(ctx, path); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "backup created", "file", filename)
	return filename, nil
}

// Restore loads the named archive from the backup directory. Unknown files,
// and names trying to escape the directory, yield ErrorNotFound.
func (s *MaintenanceService) Restore(ctx context.Context, filename string) error {
	if filename == "" || filename != filepath.Base(filename) {
		return common.ErrorNotFound
	}

	path := filepath.Join(s.backupDir, filename)
	if _, err := os.Stat(path); err != nil {
		return common.ErrorNotFound
	}

	if err := s.tool.Restore(ctx, path); err != nil {
		return err
	}

	s.logger.Info(ctx, "restore completed", "file", filename)
	return nil
}

// backupFileName renders "backup-<ISO8601 with ':' and '.' as '-'>.gz",
// e.g. backup-2026-08-29T12-34-56-789Z.gz.
func backupFileName(ts time.Time) string {
	iso := ts.Format("2006-01-02T15:04:05.000Z")
	return "backup-" + strings.NewReplacer(":", "-", ".", "-").Replace(iso) + ".gz"
}
