package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/rl1809/storekeeper/internal/core/domain"
)

const (
	storeKeyPrefix    = "store:"
	snapshotKeyPrefix = "snapshot:"
)

func storeSnapshotsKey(store string) string { return storeKeyPrefix + store + ":snapshots" }
func snapshotKey(id string) string          { return snapshotKeyPrefix + id }
func quantityKey(id string) string          { return snapshotKeyPrefix + id + ":quantity" }
func costKey(id string) string              { return snapshotKeyPrefix + id + ":cost" }

// RedisAdapter reads snapshots kept as a per-store list of IDs plus hashes
// for each snapshot's date, quantities and costs.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) LoadSnapshots(ctx context.Context, store string) ([]*domain.Inventory, error) {
	ids, err := r.client.LRange(ctx, storeSnapshotsKey(store), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	snapshots := make([]*domain.Inventory, 0, len(ids))
	for _, id := range ids {
		inv, err := r.loadSnapshot(ctx, id)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, inv)
	}
	return snapshots, nil
}

func (r *RedisAdapter) loadSnapshot(ctx context.Context, id string) (*domain.Inventory, error) {
	var (
		date       *redis.StringCmd
		quantities *redis.MapStringStringCmd
		costs      *redis.MapStringStringCmd
	)
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		date = pipe.HGet(ctx, snapshotKey(id), "date")
		quantities = pipe.HGetAll(ctx, quantityKey(id))
		costs = pipe.HGetAll(ctx, costKey(id))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", id, err)
	}

	takenOn, err := time.Parse(dateLayout, date.Val())
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: date: %w", id, err)
	}

	inv := domain.NewInventoryWithID(id, takenOn)
	costByItem := costs.Val()
	for name, raw := range quantities.Val() {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %s quantity: %w", id, name, err)
		}
		cost, err := decimal.NewFromString(costByItem[name])
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %s cost: %w", id, name, err)
		}
		inv.RecordItem(name, domain.Item{Quantity: qty, Cost: cost})
	}
	return inv, nil
}

// PutSnapshot writes a snapshot and appends it to the store's history.
// Used to prepare fixtures; the running service only reads.
func (r *RedisAdapter) PutSnapshot(ctx context.Context, store string, inv *domain.Inventory) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		id := inv.ID()
		pipe.HSet(ctx, snapshotKey(id), "date", inv.Date().Format(dateLayout))
		for name, item := range inv.Items() {
			pipe.HSet(ctx, quantityKey(id), name, item.Quantity)
			pipe.HSet(ctx, costKey(id), name, item.Cost.String())
		}
		pipe.RPush(ctx, storeSnapshotsKey(store), id)
		return nil
	})
	return err
}
