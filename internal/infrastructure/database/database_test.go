package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/config"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/repository"
)

func TestSetupSnapshotStoreMemory(t *testing.T) {
	store, err := SetupSnapshotStore(context.Background(), &config.Config{
		SnapshotStore: config.StoreMemory,
		SnapshotTTL:   time.Minute,
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, ok := store.Repository.(*repository.MemorySnapshotRepository); !ok {
		t.Fatalf("expected memory repository, got %T", store.Repository)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestSetupSnapshotStoreRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := SetupSnapshotStore(context.Background(), &config.Config{
		SnapshotStore: config.StoreRedis,
		SnapshotTTL:   time.Minute,
		RedisAddr:     mr.Addr(),
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	if _, ok := store.Repository.(*repository.RedisSnapshotRepository); !ok {
		t.Fatalf("expected redis repository, got %T", store.Repository)
	}
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisClient(context.Background(), &config.Config{RedisAddr: addr}); err == nil {
		t.Fatal("expected connection error")
	}
}
