// Package entries provides persistence for guest book entries: a Mongo-backed
// repository for production and an in-memory one for tests.
package entries

import (
	"context"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/server/models"
)

// Repository is the storage contract for guest book entries.
//
// Search matches query case-insensitively as a substring of name, from or
// comments (OR across fields); startDate/endDate bound the creation date
// inclusively; all supplied filters combine with AND. Results are always
// newest first.
type Repository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Get(ctx context.Context, id string) (*models.Entry, error)
	List(ctx context.Context) ([]*models.Entry, error)
	Search(ctx context.Context, query string, startDate, endDate *time.Time) ([]*models.Entry, error)
	Delete(ctx context.Context, id string) error
	UpdatePhoto(ctx context.Context, id string, path string) (*models.Entry, error)
}
