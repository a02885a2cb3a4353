package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rl1809/storekeeper/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func cleanupRedisStore(ctx context.Context, client *redis.Client, store string) {
	ids, _ := client.LRange(ctx, storeSnapshotsKey(store), 0, -1).Result()
	for _, id := range ids {
		client.Del(ctx, snapshotKey(id), quantityKey(id), costKey(id))
	}
	client.Del(ctx, storeSnapshotsKey(store))
}

func TestRedisLoadSnapshots_RoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	store := "test-store-redis"

	// Setup
	cleanupRedisStore(ctx, client, store)
	defer cleanupRedisStore(ctx, client, store)

	first := domain.NewInventory(time.Date(2017, 9, 16, 0, 0, 0, 0, time.UTC))
	first.RecordItem("hammer", domain.Item{Quantity: 20, Cost: decimal.NewFromInt(20)})
	second := domain.NewInventory(time.Date(2017, 9, 18, 0, 0, 0, 0, time.UTC))
	second.RecordItem("mitre saw", domain.Item{Quantity: 10, Cost: decimal.RequireFromString("409.99")})
	second.RecordItem("hammer", domain.Item{Quantity: 15, Cost: decimal.NewFromInt(20)})

	if err := adapter.PutSnapshot(ctx, store, first); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := adapter.PutSnapshot(ctx, store, second); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// Test
	snapshots, err := adapter.LoadSnapshots(ctx, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify
	if len(snapshots) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snapshots))
	}
	if snapshots[0].ID() != first.ID() || snapshots[1].ID() != second.ID() {
		t.Error("expected snapshots in insertion order")
	}
	if !snapshots[1].Date().Equal(second.Date()) {
		t.Errorf("expected date %s, got %s", second.Date(), snapshots[1].Date())
	}
	saw, ok := snapshots[1].Item("mitre saw")
	if !ok {
		t.Fatal("expected mitre saw")
	}
	if saw.Quantity != 10 || !saw.Cost.Equal(decimal.RequireFromString("409.99")) {
		t.Errorf("expected 10 @ 409.99, got %d @ %s", saw.Quantity, saw.Cost)
	}
}

func TestRedisLoadSnapshots_EmptyStore(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	cleanupRedisStore(ctx, client, "nonexistent")

	snapshots, err := NewRedisAdapter(client).LoadSnapshots(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshots) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snapshots))
	}
}
