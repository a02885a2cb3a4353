package port

import (
	"context"

	"github.com/rl1809/storekeeper/internal/core/domain"
)

type SnapshotSource interface {
	// LoadSnapshots returns a store's inventory snapshots in the order they were taken
	LoadSnapshots(ctx context.Context, store string) ([]*domain.Inventory, error)
}
