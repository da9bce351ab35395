package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	dumped   []string
	restored []string
	err      error
}

func (s *stubTool) Dump(_ context.Context, path string) error {
	s.dumped = append(s.dumped, path)
	return s.err
}

func (s *stubTool) Restore(_ context.Context, path string) error {
	s.restored = append(s.restored, path)
	return s.err
}

func TestMaintenanceService_Backup(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "backups")
	tool := &stubTool{}
	svc := NewMaintenanceService(dir, tool, testLogger())

	filename, err := svc.Backup(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^backup-\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z\.gz$`), filename)

	require.Len(t, tool.dumped, 1)
	assert.Equal(t, filepath.Join(dir, filename), tool.dumped[0])

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "backup dir must be created if absent")
}

func TestMaintenanceService_Backup_ToolFailure(t *testing.T) {
	t.Parallel()

	tool := &stubTool{err: errors.New("mongodump exploded")}
	svc := NewMaintenanceService(t.TempDir(), tool, testLogger())

	_, err := svc.Backup(context.Background())
	assert.ErrorContains(t, err, "mongodump exploded")
}

func TestMaintenanceService_Restore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := "backup-2026-01-02T03-04-05-000Z.gz"
	require.NoError(t, os.WriteFile(filepath.Join(dir, existing), []byte("archive"), 0o644))

	tool := &stubTool{}
	svc := NewMaintenanceService(dir, tool, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Restore(ctx, existing))
	require.Len(t, tool.restored, 1)
	assert.Equal(t, filepath.Join(dir, existing), tool.restored[0])
}

func TestMaintenanceService_Restore_Rejections(t *testing.T) {
	t.Parallel()

	tool := &stubTool{}
	svc := NewMaintenanceService(t.TempDir(), tool, testLogger())
	ctx := context.Background()

	tests := []struct {
		name     string
		filename string
	}{
		{name: "missing file", filename: "backup-nope.gz"},
		{name: "empty name", filename: ""},
		{name: "path traversal", filename: "../../etc/passwd"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Restore(ctx, tc.filename)
			assert.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
	assert.Empty(t, tool.restored, "tool must never run for rejected names")
}
