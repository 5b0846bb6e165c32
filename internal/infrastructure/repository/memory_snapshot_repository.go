package repository

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/domain/repositories"
)

// MemorySnapshotRepository keeps snapshots in process memory. Expired entries
// stay hidden until DeleteExpired runs; no janitor goroutine is started.
type MemorySnapshotRepository struct {
	cache *cache.Cache
}

// NewMemorySnapshotRepository creates a repository whose entries default to ttl
func NewMemorySnapshotRepository(ttl time.Duration) *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		cache: cache.New(ttl, 0),
	}
}

func (r *MemorySnapshotRepository) Save(_ context.Context, snapshot *entities.Snapshot, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	r.cache.Set(snapshot.ID, snapshot, ttl)
	return nil
}

func (r *MemorySnapshotRepository) FindByID(_ context.Context, id string) (*entities.Snapshot, error) {
	value, found := r.cache.Get(id)
	if !found {
		return nil, repositories.ErrSnapshotNotFound
	}
	return value.(*entities.Snapshot), nil
}

func (r *MemorySnapshotRepository) DeleteExpired(_ context.Context) (int, error) {
	before := r.cache.ItemCount()
	r.cache.DeleteExpired()
	return before - r.cache.ItemCount(), nil
}
