package entries

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is an in-memory Repository used by tests. It mirrors the
// Mongo implementation's semantics, including ObjectID identifiers.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*models.Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]*models.Entry)}
}

func (r *MemoryRepository) Create(_ context.Context, entry *models.Entry) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	stored := *entry
	r.entries[entry.ID.Hex()] = &stored
	return entry, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Entry, error) {
	return r.Search(ctx, "", nil, nil)
}

func (r *MemoryRepository) Search(_ context.Context, query string, startDate, endDate *time.Time) ([]*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)

	var result []*models.Entry
	for _, e := range r.entries {
		if q != "" && !matches(e, q) {
			continue
		}
		if startDate != nil && e.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && e.Date.After(*endDate) {
			continue
		}
		copied := *e
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *MemoryRepository) UpdatePhoto(_ context.Context, id string, path string) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	e.Photo = path
	copied := *e
	return &copied, nil
}

func matches(e *models.Entry, q string) bool {
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.From), q) ||
		strings.Contains(strings.ToLower(e.Comments), q)
}
