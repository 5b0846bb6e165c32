package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/domain/repositories"
)

const snapshotKeyPrefix = "dashboard:snapshot:"

// RedisSnapshotRepository stores snapshots as JSON with a Redis TTL
type RedisSnapshotRepository struct {
	client *redis.Client
}

func NewRedisSnapshotRepository(client *redis.Client) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{client: client}
}

func (r *RedisSnapshotRepository) Save(ctx context.Context, snapshot *entities.Snapshot, ttl time.Duration) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snapshot.ID, err)
	}
	if err := r.client.Set(ctx, snapshotKeyPrefix+snapshot.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot %s: %w", snapshot.ID, err)
	}
	return nil
}

func (r *RedisSnapshotRepository) FindByID(ctx context.Context, id string) (*entities.Snapshot, error) {
	payload, err := r.client.Get(ctx, snapshotKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}

	var snapshot entities.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", id, err)
	}
	return &snapshot, nil
}

// DeleteExpired is a no-op: Redis evicts expired keys itself.
func (r *RedisSnapshotRepository) DeleteExpired(context.Context) (int, error) {
	return 0, nil
}
