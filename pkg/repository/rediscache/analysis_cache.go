package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/artem13815/careerpath/pkg/analysis"
)

// AnalysisCache — read-through кэш поверх analysis.Repository. Источник
// истины — только Postgres: промах или любая ошибка Redis прозрачно уходит
// в нижний репозиторий, удаление инвалидирует ключ. Записи неизменяемы,
// поэтому устаревание возможно лишь между delete и инвалидацией — TTL
// ограничивает это окно.
type AnalysisCache struct {
	inner  analysis.Repository
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisCache(inner analysis.Repository, client *redis.Client, ttl time.Duration) *AnalysisCache {
	return &AnalysisCache{inner: inner, client: client, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return "career_analysis:" + id.String()
}

func (c *AnalysisCache) Create(ctx context.Context, a analysis.Analysis) (analysis.Analysis, error) {
	created, err := c.inner.Create(ctx, a)
	if err != nil {
		return analysis.Analysis{}, err
	}
	c.store(ctx, created)
	return created, nil
}

func (c *AnalysisCache) GetByID(ctx context.Context, id uuid.UUID) (analysis.Analysis, error) {
	if a, ok := c.lookup(ctx, id); ok {
		return a, nil
	}
	a, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return analysis.Analysis{}, err
	}
	c.store(ctx, a)
	return a, nil
}

func (c *AnalysisCache) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (analysis.Analysis, error) {
	// проверка владельца остаётся и на пути из кэша
	if a, ok := c.lookup(ctx, id); ok {
		if a.UserID != ownerID {
			return analysis.Analysis{}, analysis.ErrNotFound
		}
		return a, nil
	}
	a, err := c.inner.GetByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return analysis.Analysis{}, err
	}
	c.store(ctx, a)
	return a, nil
}

// Списки не кэшируются: выдача должна сразу отражать новые и удалённые записи.
func (c *AnalysisCache) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]analysis.Analysis, error) {
	return c.inner.ListByOwner(ctx, ownerID, limit, offset)
}

func (c *AnalysisCache) ListAll(ctx context.Context, limit, offset int) ([]analysis.Analysis, error) {
	return c.inner.ListAll(ctx, limit, offset)
}

func (c *AnalysisCache) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := c.inner.DeleteForOwner(ctx, ownerID, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *AnalysisCache) DeleteAny(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.DeleteAny(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *AnalysisCache) lookup(ctx context.Context, id uuid.UUID) (analysis.Analysis, bool) {
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		return analysis.Analysis{}, false
	}
	var a analysis.Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		return analysis.Analysis{}, false
	}
	return a, true
}

func (c *AnalysisCache) store(ctx context.Context, a analysis.Analysis) {
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	// best-effort: ошибка записи в кэш не влияет на ответ
	_ = c.client.Set(ctx, cacheKey(a.ID), raw, c.ttl).Err()
}

func (c *AnalysisCache) invalidate(ctx context.Context, id uuid.UUID) {
	_ = c.client.Del(ctx, cacheKey(id)).Err()
}
