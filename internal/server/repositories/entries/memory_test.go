package entries

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRepo(t *testing.T) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository()
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	seed := []*models.Entry{
		{Name: "Ann", From: "Boston", Comments: "Great stay", Date: base},
		{Name: "Bob", From: "New York City", Comments: "Lovely place", Date: base.AddDate(0, 0, 1)},
		{Name: "Carla", From: "Lisbon", Comments: "Nice CITY views", Date: base.AddDate(0, 0, 2)},
	}
	for _, e := range seed {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}
	return repo
}

func TestMemoryRepository_List_NewestFirst(t *testing.T) {
	t.Parallel()

	repo := seedRepo(t)
	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Carla", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)
	assert.Equal(t, "Ann", got[2].Name)
}

func TestMemoryRepository_Get(t *testing.T) {
	t.Parallel()

	repo := seedRepo(t)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)

	got, err := repo.Get(ctx, all[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, all[0].Name, got.Name)

	_, err = repo.Get(ctx, "65f000000000000000000000")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_Search_Query(t *testing.T) {
	t.Parallel()

	repo := seedRepo(t)
	got, err := repo.Search(context.Background(), "city", nil, nil)
	require.NoError(t, err)

	// matches "New York City" (from) and "Nice CITY views" (comments)
	require.Len(t, got, 2)
	for _, e := range got {
		assert.NotEqual(t, "Ann", e.Name)
	}
}

func TestMemoryRepository_Search_DateRangeInclusive(t *testing.T) {
	t.Parallel()

	repo := seedRepo(t)
	start := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

	got, err := repo.Search(context.Background(), "", &start, &end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bob", got[0].Name)
	assert.Equal(t, "Ann", got[1].Name)
}

func TestMemoryRepository_Search_CombinesFilters(t *testing.T) {
	t.Parallel()

	repo := seedRepo(t)
	end := time.Date(2025, 5, 1, 23, 0, 0, 0, time.UTC)

	// "city" matches Bob and Carla, but the date bound excludes both
	got, err := repo.Search(context.Background(), "city", nil, &end)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := seedRepo(t)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, all[0].ID.Hex()))

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	err = repo.Delete(ctx, "65f000000000000000000000")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_UpdatePhoto(t *testing.T) {
	t.Parallel()

	repo := seedRepo(t)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)

	updated, err := repo.UpdatePhoto(ctx, all[0].ID.Hex(), "/uploads/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/p.jpg", updated.Photo)

	_, err = repo.UpdatePhoto(ctx, "missing", "/uploads/p.jpg")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
