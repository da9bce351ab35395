// Package services contains the server-side business logic: entry CRUD and
// search, host authentication, and database backup/restore orchestration.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/sanitize"
	"github.com/dmitrijs2005/guestbook/internal/server/models"
	"github.com/dmitrijs2005/guestbook/internal/server/notify"
	"github.com/dmitrijs2005/guestbook/internal/server/repositories/entries"
)

// EntryService owns the guest book entry lifecycle. All incoming text passes
// through the sanitizer before validation and persistence; creation
// notifications are best-effort.
type EntryService struct {
	repo     entries.Repository
	notifier notify.Notifier
	logger   logging.Logger
}

func NewEntryService(repo entries.Repository, notifier notify.Notifier, logger logging.Logger) *EntryService {
	return &EntryService{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("module", "entry_service"),
	}
}

// Create sanitizes and validates the submitted fields, assigns the creation
// date, derives the stay duration, and persists the entry. The returned
// record carries the store-assigned id.
func (s *EntryService) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	sanitizeEntry(entry)

	if entry.Name == "" || entry.From == "" || entry.Comments == "" {
		return nil, common.ErrorValidation
	}

	// Server-assigned, regardless of what the client sent.
	entry.Date = time.Now().UTC()
	entry.Photo = ""
	entry.ComputeDuration()

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}

	if err := s.notifier.Notify(ctx, created); err != nil {
		s.logger.Error(ctx, "notification failed", "entry_id", created.ID.Hex(), "error", err)
	}

	return created, nil
}

// Get returns a single entry by id. Absent or malformed ids yield
// ErrorNotFound.
func (s *EntryService) Get(ctx context.Context, id string) (*models.Entry, error) {
	return s.repo.Get(ctx, id)
}

// List returns all entries, newest first.
func (s *EntryService) List(ctx context.Context) ([]*models.Entry, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return result, nil
}

// Search filters entries by a case-insensitive substring and an inclusive
// creation-date range; filters combine with AND.
func (s *EntryService) Search(ctx context.Context, query string, startDate, endDate *time.Time) ([]*models.Entry, error) {
	result, err := s.repo.Search(ctx, sanitize.Clean(query), startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("error searching entries: %w", err)
	}
	return result, nil
}

// Delete removes an entry by id. Absent or malformed ids yield ErrorNotFound.
func (s *EntryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AttachPhoto records the stored photo path on an existing entry.
func (s *EntryService) AttachPhoto(ctx context.Context, id string, path string) (*models.Entry, error) {
	return s.repo.UpdatePhoto(ctx, id, path)
}

func sanitizeEntry(e *models.Entry) {
	e.Name = sanitize.Truncate(sanitize.Clean(e.Name), sanitize.MaxNameLen)
	e.From = sanitize.Clean(e.From)
	e.Comments = sanitize.Truncate(sanitize.Clean(e.Comments), sanitize.MaxCommentsLen)
}
