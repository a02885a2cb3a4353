package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storekeeper/internal/core/domain"
)

// MySQLAdapter reads snapshot history from inventory_snapshots/snapshot_items.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) LoadSnapshots(ctx context.Context, store string) ([]*domain.Inventory, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT s.id, s.taken_on, i.item, i.quantity, i.cost
		FROM inventory_snapshots s
		LEFT JOIN snapshot_items i ON i.snapshot_id = s.id
		WHERE s.store = ?
		ORDER BY s.seq, i.item`, store,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.Inventory
	var current *domain.Inventory
	for rows.Next() {
		var (
			id       string
			takenOn  time.Time
			item     sql.NullString
			quantity sql.NullInt64
			cost     sql.NullString
		)
		if err := rows.Scan(&id, &takenOn, &item, &quantity, &cost); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}

		if current == nil || current.ID() != id {
			current = domain.NewInventoryWithID(id, takenOn)
			snapshots = append(snapshots, current)
		}
		// Snapshot with no items.
		if !item.Valid {
			continue
		}

		unit, err := decimal.NewFromString(cost.String)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %s cost: %w", id, item.String, err)
		}
		current.RecordItem(item.String, domain.Item{Quantity: int(quantity.Int64), Cost: unit})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}

	return snapshots, nil
}
