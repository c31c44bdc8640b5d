package rediscache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerpath/pkg/analysis"
)

// fakeRepo — потокобезопасная карта вместо Postgres.
type fakeRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]analysis.Analysis
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]analysis.Analysis{}}
}

func (r *fakeRepo) Create(_ context.Context, a analysis.Analysis) (analysis.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.ID] = a
	return a, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (analysis.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return analysis.Analysis{}, analysis.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) GetByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (analysis.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok || a.UserID != ownerID {
		return analysis.Analysis{}, analysis.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]analysis.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []analysis.Analysis{}
	for _, a := range r.items {
		if a.UserID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAll(_ context.Context, limit, offset int) ([]analysis.Analysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []analysis.Analysis{}
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok || a.UserID != ownerID {
		return analysis.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) DeleteAny(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return analysis.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// deadClient указывает на закрытый порт: каждая операция Redis отказывает,
// кэш обязан прозрачно деградировать до нижнего репозитория.
func deadClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestAnalysisCache_FallsThroughWhenRedisDown(t *testing.T) {
	repo := newFakeRepo()
	cache := NewAnalysisCache(repo, deadClient(), time.Minute)
	ctx := context.Background()

	owner := uuid.New()
	created, err := cache.Create(ctx, analysis.Analysis{ID: uuid.New(), UserID: owner})
	require.NoError(t, err)

	got, err := cache.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	got, err = cache.GetByIDForOwner(ctx, owner, created.ID)
	require.NoError(t, err)
	require.Equal(t, owner, got.UserID)

	_, err = cache.GetByIDForOwner(ctx, uuid.New(), created.ID)
	require.ErrorIs(t, err, analysis.ErrNotFound)
}

func TestAnalysisCache_DeleteReachesInnerRepo(t *testing.T) {
	repo := newFakeRepo()
	cache := NewAnalysisCache(repo, deadClient(), time.Minute)
	ctx := context.Background()

	owner := uuid.New()
	created, err := cache.Create(ctx, analysis.Analysis{ID: uuid.New(), UserID: owner})
	require.NoError(t, err)

	require.ErrorIs(t, cache.DeleteForOwner(ctx, uuid.New(), created.ID), analysis.ErrNotFound)
	require.NoError(t, cache.DeleteForOwner(ctx, owner, created.ID))

	_, err = cache.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, analysis.ErrNotFound)
}

func TestAnalysisCache_ListsBypassCache(t *testing.T) {
	repo := newFakeRepo()
	cache := NewAnalysisCache(repo, deadClient(), time.Minute)
	ctx := context.Background()

	owner := uuid.New()
	for i := 0; i < 3; i++ {
		_, err := cache.Create(ctx, analysis.Analysis{ID: uuid.New(), UserID: owner})
		require.NoError(t, err)
	}
	_, err := cache.Create(ctx, analysis.Analysis{ID: uuid.New(), UserID: uuid.New()})
	require.NoError(t, err)

	mine, err := cache.ListByOwner(ctx, owner, 50, 0)
	require.NoError(t, err)
	require.Len(t, mine, 3)

	all, err := cache.ListAll(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
}
