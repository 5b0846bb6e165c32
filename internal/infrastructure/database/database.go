package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/repositories"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/config"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/repository"
)

const redisConnectionTimeout = 5 * time.Second

// SnapshotStore is the configured snapshot repository plus its cleanup hook
type SnapshotStore struct {
	Repository repositories.SnapshotRepository
	Close      func() error
}

// SetupSnapshotStore builds the snapshot repository selected by cfg
func SetupSnapshotStore(ctx context.Context, cfg *config.Config) (*SnapshotStore, error) {
	if cfg.SnapshotStore != config.StoreRedis {
		log.Printf("🗂️ Using in-memory snapshot store (ttl %s)", cfg.SnapshotTTL)
		return &SnapshotStore{
			Repository: repository.NewMemorySnapshotRepository(cfg.SnapshotTTL),
			Close:      func() error { return nil },
		}, nil
	}

	client, err := NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &SnapshotStore{
		Repository: repository.NewRedisSnapshotRepository(client),
		Close:      client.Close,
	}, nil
}

// NewRedisClient connects to Redis and verifies the connection with PING
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisConnectionTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	log.Printf("✅ Connected to Redis (%s, DB %d)", cfg.RedisAddr, cfg.RedisDB)
	return client, nil
}
