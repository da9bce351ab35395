package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/server/models"
	"github.com/dmitrijs2005/guestbook/internal/server/notify"
	"github.com/dmitrijs2005/guestbook/internal/server/repositories/entries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type failingNotifier struct {
	called bool
}

func (n *failingNotifier) Notify(context.Context, *models.Entry) error {
	n.called = true
	return errors.New("smtp down")
}

func newEntryService(n notify.Notifier) (*EntryService, *entries.MemoryRepository) {
	repo := entries.NewMemoryRepository()
	return NewEntryService(repo, n, testLogger()), repo
}

func TestEntryService_Create_AssignsServerDate(t *testing.T) {
	t.Parallel()

	svc, _ := newEntryService(notify.Noop{})

	clientDate := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &models.Entry{
		Name:     "Ann",
		From:     "Boston",
		Comments: "Great stay",
		Date:     clientDate,
	})
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero(), "id must be store-assigned")
	assert.NotEqual(t, clientDate, created.Date, "date must not be client-controllable")
	assert.WithinDuration(t, time.Now().UTC(), created.Date, 5*time.Second)
}

func TestEntryService_Create_SanitizesAndTruncates(t *testing.T) {
	t.Parallel()

	svc, _ := newEntryService(notify.Noop{})

	created, err := svc.Create(context.Background(), &models.Entry{
		Name:     "<script>alert(1)</script>" + strings.Repeat("n", 80),
		From:     "  Boston  ",
		Comments: strings.Repeat("c", 1200),
	})
	require.NoError(t, err)

	assert.NotContains(t, created.Name, "<script>")
	assert.Len(t, []rune(created.Name), 50)
	assert.Equal(t, "Boston", created.From)
	assert.Len(t, []rune(created.Comments), 1000)
}

func TestEntryService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newEntryService(notify.Noop{})

	tests := []struct {
		name  string
		entry models.Entry
	}{
		{name: "missing name", entry: models.Entry{From: "Boston", Comments: "hi"}},
		{name: "missing from", entry: models.Entry{Name: "Ann", Comments: "hi"}},
		{name: "missing comments", entry: models.Entry{Name: "Ann", From: "Boston"}},
		{name: "name reduced to empty", entry: models.Entry{Name: "<script>x</script>", From: "Boston", Comments: "hi"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.entry
			_, err := svc.Create(context.Background(), &e)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestEntryService_Create_ComputesDuration(t *testing.T) {
	t.Parallel()

	svc, _ := newEntryService(notify.Noop{})

	in := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	created, err := svc.Create(context.Background(), &models.Entry{
		Name: "Ann", From: "Boston", Comments: "Great stay",
		CheckIn: &in, CheckOut: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.Duration)
}

func TestEntryService_Create_NotifierFailureIsNotSurfaced(t *testing.T) {
	t.Parallel()

	n := &failingNotifier{}
	svc, repo := newEntryService(n)

	_, err := svc.Create(context.Background(), &models.Entry{
		Name: "Ann", From: "Boston", Comments: "Great stay",
	})
	require.NoError(t, err, "notification failure must stay best-effort")
	assert.True(t, n.called)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEntryService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newEntryService(notify.Noop{})
	err := svc.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestEntryService_AttachPhoto(t *testing.T) {
	t.Parallel()

	svc, _ := newEntryService(notify.Noop{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Entry{Name: "Ann", From: "Boston", Comments: "Great stay"})
	require.NoError(t, err)

	updated, err := svc.AttachPhoto(ctx, created.ID.Hex(), "/uploads/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/x.jpg", updated.Photo)
}
