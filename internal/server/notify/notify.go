// Package notify sends best-effort notifications about new guest book
// entries. Callers log failures and never propagate them to the submitter.
package notify

import (
	"context"

	"github.com/dmitrijs2005/guestbook/internal/server/models"
)

// Notifier announces a newly created entry to the host.
type Notifier interface {
	Notify(ctx context.Context, entry *models.Entry) error
}

// Noop is a Notifier that does nothing. Used when no recipient is configured
// and in tests.
type Noop struct{}

func (Noop) Notify(context.Context, *models.Entry) error { return nil }
