package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/LeeFlannery/dashboard-playground/internal/domain/entities"
	"github.com/LeeFlannery/dashboard-playground/internal/domain/repositories"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/mockdata"
)

func testSnapshot(t *testing.T) *entities.Snapshot {
	t.Helper()
	snap, err := mockdata.NewGenerator(5, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Snapshot()
	if err != nil {
		t.Fatalf("generate snapshot: %v", err)
	}
	return &snap
}

func TestMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository(time.Minute)
	snap := testSnapshot(t)

	if err := repo.Save(ctx, snap, time.Minute); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := repo.FindByID(ctx, snap.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.ID != snap.ID || len(got.Sessions) != len(snap.Sessions) {
		t.Fatalf("unexpected snapshot %+v", got.Info())
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, repositories.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestMemorySnapshotRepositoryDeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySnapshotRepository(time.Minute)
	snap := testSnapshot(t)

	if err := repo.Save(ctx, snap, time.Millisecond); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := repo.FindByID(ctx, snap.ID); !errors.Is(err, repositories.ErrSnapshotNotFound) {
		t.Fatalf("expected expired snapshot to be hidden, got %v", err)
	}
	removed, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("delete expired failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed snapshot, got %d", removed)
	}
}

func TestRedisSnapshotRepositoryRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	repo := NewRedisSnapshotRepository(client)
	snap := testSnapshot(t)

	if err := repo.Save(ctx, snap, 10*time.Minute); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if ttl := mr.TTL(snapshotKeyPrefix + snap.ID); ttl != 10*time.Minute {
		t.Fatalf("expected ttl 10m, got %v", ttl)
	}

	got, err := repo.FindByID(ctx, snap.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if diff := cmp.Diff(snap, got); diff != "" {
		t.Fatalf("snapshot changed through redis (-want +got):\n%s", diff)
	}
}

func TestRedisSnapshotRepositoryExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	repo := NewRedisSnapshotRepository(client)
	snap := testSnapshot(t)
	if err := repo.Save(ctx, snap, time.Minute); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := repo.FindByID(ctx, snap.ID); !errors.Is(err, repositories.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound after expiry, got %v", err)
	}
	if removed, err := repo.DeleteExpired(ctx); err != nil || removed != 0 {
		t.Fatalf("expected no-op prune, got %d, %v", removed, err)
	}
}
